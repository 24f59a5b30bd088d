package pose

import (
	"sync"

	"gocv.io/x/gocv"
)

// Mock implements Detector for testing.
// All methods can be customized via function fields.
type Mock struct {
	// DetectFunc is called when Detect is invoked.
	// If nil, reports no person.
	DetectFunc func(frame gocv.Mat) (*Skeleton, error)

	// CloseFunc is called when Close is invoked.
	// If nil, returns nil.
	CloseFunc func() error

	// Tracking
	mu      sync.Mutex
	detects int
	closes  int
}

// NewMock creates a new mock detector that sees nobody.
func NewMock() *Mock {
	return &Mock{}
}

// SkeletonAt builds a skeleton whose nose sits at (x, y) with the
// remaining keypoints fully confident at the same spot. Handy for
// driving tests.
func SkeletonAt(x, y float64) *Skeleton {
	var skel Skeleton
	for i := range skel.Landmarks {
		skel.Landmarks[i] = Landmark{X: x, Y: y, Score: 1.0}
	}
	return &skel
}

// Detect implements Detector.
func (m *Mock) Detect(frame gocv.Mat) (*Skeleton, error) {
	m.mu.Lock()
	m.detects++
	m.mu.Unlock()

	if m.DetectFunc != nil {
		return m.DetectFunc(frame)
	}
	return nil, nil
}

// Close implements Detector.
func (m *Mock) Close() error {
	m.mu.Lock()
	m.closes++
	m.mu.Unlock()

	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// DetectCalls returns how many times Detect was invoked.
func (m *Mock) DetectCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detects
}

// CloseCalls returns how many times Close was invoked.
func (m *Mock) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}
