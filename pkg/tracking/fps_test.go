package tracking

import (
	"testing"
	"time"
)

type tickClock struct {
	t time.Time
}

func (c *tickClock) now() time.Time          { return c.t }
func (c *tickClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMeter_NoUpdateInsideWindow(t *testing.T) {
	clock := &tickClock{t: time.Unix(0, 0)}
	m := newMeter(clock.now)

	// 20 frames over 0.8s: still inside the first window.
	for i := 0; i < 20; i++ {
		clock.advance(40 * time.Millisecond)
		if got := m.Tick(); got != 0 {
			t.Fatalf("fps inside first window: got %v, want 0", got)
		}
	}
}

func TestMeter_UpdatesAfterOneSecond(t *testing.T) {
	clock := &tickClock{t: time.Unix(0, 0)}
	m := newMeter(clock.now)

	// 30 frames, the last one pushing elapsed past 1s.
	var fps float64
	for i := 0; i < 30; i++ {
		clock.advance(35 * time.Millisecond) // 30 * 35ms = 1.05s
		fps = m.Tick()
	}

	want := 30.0 / 1.05
	if diff := fps - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("fps: got %v, want about %v", fps, want)
	}
	if m.FPS() != fps {
		t.Errorf("FPS(): got %v, want %v", m.FPS(), fps)
	}
}

func TestMeter_ValueConstantUntilNextWindowCloses(t *testing.T) {
	clock := &tickClock{t: time.Unix(0, 0)}
	m := newMeter(clock.now)

	// Close the first window.
	clock.advance(1100 * time.Millisecond)
	first := m.Tick()
	if first == 0 {
		t.Fatal("expected an estimate after 1.1s")
	}

	// Frames inside the second window must report the same value.
	for i := 0; i < 5; i++ {
		clock.advance(100 * time.Millisecond)
		if got := m.Tick(); got != first {
			t.Fatalf("fps changed mid-window: got %v, want %v", got, first)
		}
	}

	// Closing the second window recomputes: 6 frames / 1.6s.
	clock.advance(1100 * time.Millisecond)
	second := m.Tick()
	if second == first {
		t.Error("expected a new estimate after the second window closed")
	}
}
