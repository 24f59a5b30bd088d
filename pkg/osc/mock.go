package osc

import "sync"

// Mock implements Publisher for testing.
// All methods can be customized via function fields.
type Mock struct {
	// PublishFunc is called when PublishPosition is invoked.
	// If nil, the call succeeds.
	PublishFunc func(x, y float64) error

	// CloseFunc is called when Close is invoked.
	// If nil, returns nil.
	CloseFunc func() error

	// Tracking
	mu        sync.Mutex
	published []Position
	closes    int
}

// Position records one published pair.
type Position struct {
	X, Y float64
}

// NewMock creates a mock publisher that accepts everything.
func NewMock() *Mock {
	return &Mock{}
}

// PublishPosition implements Publisher.
func (m *Mock) PublishPosition(x, y float64) error {
	m.mu.Lock()
	m.published = append(m.published, Position{X: x, Y: y})
	m.mu.Unlock()

	if m.PublishFunc != nil {
		return m.PublishFunc(x, y)
	}
	return nil
}

// Target implements Publisher.
func (m *Mock) Target() string {
	return "mock:0"
}

// Close implements Publisher.
func (m *Mock) Close() error {
	m.mu.Lock()
	m.closes++
	m.mu.Unlock()

	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Published returns a copy of all recorded positions.
func (m *Mock) Published() []Position {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Position, len(m.published))
	copy(out, m.published)
	return out
}

// CloseCalls returns how many times Close was invoked.
func (m *Mock) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}
