package tracking

import "time"

// Meter estimates throughput over non-overlapping one second
// windows: once more than a second has elapsed, the rate becomes
// frames/elapsed and the window resets. The reported value is
// constant inside a window. Not a moving average.
type Meter struct {
	now         func() time.Time
	windowStart time.Time
	frames      int
	fps         float64
}

// NewMeter creates a meter running on the wall clock.
func NewMeter() *Meter {
	return newMeter(time.Now)
}

func newMeter(now func() time.Time) *Meter {
	return &Meter{
		now:         now,
		windowStart: now(),
	}
}

// Tick records one processed frame and returns the current estimate.
func (m *Meter) Tick() float64 {
	m.frames++

	elapsed := m.now().Sub(m.windowStart).Seconds()
	if elapsed > 1.0 {
		m.fps = float64(m.frames) / elapsed
		m.frames = 0
		m.windowStart = m.now()
	}

	return m.fps
}

// FPS returns the estimate from the last completed window.
func (m *Meter) FPS() float64 {
	return m.fps
}
