package overlay

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-stagetrack/pkg/pose"
	"github.com/teslashibe/go-stagetrack/pkg/tracking"
)

// newFrame returns a black 640x480 BGR frame.
func newFrame(t *testing.T) gocv.Mat {
	t.Helper()
	img := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { img.Close() })
	return img
}

// Draw renders through the Renderer without a window; only Show
// touches the display, so these run headless.

func TestDraw_PanelChangesPixels(t *testing.T) {
	img := newFrame(t)
	r := &Renderer{target: "127.0.0.1:8000"}

	r.Draw(&img, tracking.NewState(), 0, nil)

	if gocv.CountNonZero(toGray(t, img)) == 0 {
		t.Error("overlay should draw visible pixels on a black frame")
	}
}

func TestDraw_MarkerOnlyWhenDetected(t *testing.T) {
	plain := newFrame(t)
	detected := newFrame(t)
	r := &Renderer{target: "127.0.0.1:8000"}

	st := tracking.NewState()
	r.Draw(&plain, st, 0, nil)

	st.Detected = true
	st.X, st.Y = 0.75, 0.25
	r.Draw(&detected, st, 0, pose.SkeletonAt(0.75, 0.25))

	plainCount := gocv.CountNonZero(toGray(t, plain))
	detectedCount := gocv.CountNonZero(toGray(t, detected))
	if detectedCount <= plainCount {
		t.Errorf("marker and skeleton should add pixels: %d vs %d", detectedCount, plainCount)
	}
}

func toGray(t *testing.T, img gocv.Mat) gocv.Mat {
	t.Helper()
	gray := gocv.NewMat()
	t.Cleanup(func() { gray.Close() })
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	return gray
}
