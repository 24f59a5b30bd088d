package pose

import (
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// VideoDetector adapts a Detector to video mode, where every call
// must carry a strictly increasing millisecond timestamp. Timestamps
// are derived from the wall clock at call time rather than a fixed
// per-frame increment, so they stay honest under frame-rate jitter.
// Frames landing inside the same millisecond are floored one
// millisecond past the previous call.
//
// The timestamp is validated and recorded but not forwarded: the
// OpenCV DNN input has no video-mode timestamp, so the wrapper
// enforces the calling contract only.
type VideoDetector struct {
	inner Detector
	now   func() time.Time

	mu     sync.Mutex
	epoch  time.Time
	lastMS int64
}

// NewVideo wraps a detector in video mode.
func NewVideo(inner Detector) *VideoDetector {
	return newVideo(inner, time.Now)
}

func newVideo(inner Detector, now func() time.Time) *VideoDetector {
	return &VideoDetector{
		inner:  inner,
		now:    now,
		epoch:  now(),
		lastMS: -1,
	}
}

// Detect runs pose estimation with a synthesized timestamp.
func (d *VideoDetector) Detect(frame gocv.Mat) (*Skeleton, error) {
	return d.DetectAt(frame, d.nextTimestamp())
}

// DetectAt runs pose estimation at the given millisecond timestamp.
// Timestamps must strictly increase across calls.
func (d *VideoDetector) DetectAt(frame gocv.Mat, timestampMS int64) (*Skeleton, error) {
	d.mu.Lock()
	if timestampMS <= d.lastMS {
		last := d.lastMS
		d.mu.Unlock()
		return nil, fmt.Errorf("timestamp %dms not after previous %dms", timestampMS, last)
	}
	d.lastMS = timestampMS
	d.mu.Unlock()

	return d.inner.Detect(frame)
}

// nextTimestamp returns milliseconds since the detector was created,
// floored to one past the previous timestamp.
func (d *VideoDetector) nextTimestamp() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	ms := d.now().Sub(d.epoch).Milliseconds()
	if ms <= d.lastMS {
		ms = d.lastMS + 1
	}
	return ms
}

// LastTimestamp returns the timestamp of the most recent call,
// or -1 before the first one.
func (d *VideoDetector) LastTimestamp() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastMS
}

// Close releases the wrapped detector.
func (d *VideoDetector) Close() error {
	return d.inner.Close()
}
