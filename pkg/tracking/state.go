// Package tracking holds the per-frame tracker state transition.
// Everything here is pure math over detection results; capture,
// inference and output live in their own packages.
package tracking

import (
	"math"

	"github.com/teslashibe/go-stagetrack/pkg/pose"
)

// State is the tracker state threaded through the frame loop.
// X and Y are the last published position in [0,1]; before any
// detection they sit at frame center.
type State struct {
	X, Y     float64
	Detected bool   // A person is in the current frame
	Frames   uint64 // Total frames processed
}

// NewState returns the initial state, centered at (0.5, 0.5).
func NewState() State {
	return State{X: 0.5, Y: 0.5}
}

// Step advances the state with one frame's detection result and
// reports whether the position should be published this frame.
// A nil skeleton holds the last known position and publishes nothing.
func Step(prev State, skel *pose.Skeleton) (State, bool) {
	next := prev
	next.Frames++

	if skel == nil {
		next.Detected = false
		return next, false
	}

	next.X, next.Y = NosePosition(skel)
	next.Detected = true
	return next, true
}

// NosePosition extracts the nose landmark, clamped to [0,1].
// No interpolation across landmarks and no extra thresholding
// beyond what the detector applied.
func NosePosition(skel *pose.Skeleton) (x, y float64) {
	nose := skel.Landmarks[pose.Nose]
	return Clamp01(nose.X), Clamp01(nose.Y)
}

// Clamp01 clamps v to [0.0, 1.0].
func Clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
