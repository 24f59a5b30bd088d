// Package overlay renders the debug view: an info panel, the tracked
// position marker and the detected skeleton, shown in an OpenCV
// window. Rendering is purely observational and never feeds back
// into the published data.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-stagetrack/pkg/pose"
	"github.com/teslashibe/go-stagetrack/pkg/tracking"
)

var (
	colorGreen  = color.RGBA{0, 255, 0, 0}
	colorRed    = color.RGBA{255, 0, 0, 0}
	colorYellow = color.RGBA{255, 255, 0, 0}
	colorWhite  = color.RGBA{255, 255, 255, 0}
	colorGray   = color.RGBA{200, 200, 200, 0}
	colorBlack  = color.RGBA{0, 0, 0, 0}
	colorLimb   = color.RGBA{0, 200, 255, 0}
)

// skeleton pairs landmark indices to draw limb lines between.
var skeleton = [][2]int{
	{pose.LeftShoulder, pose.LeftElbow},
	{pose.LeftElbow, pose.LeftWrist},
	{pose.RightShoulder, pose.RightElbow},
	{pose.RightElbow, pose.RightWrist},
	{pose.LeftShoulder, pose.RightShoulder},
	{pose.LeftShoulder, pose.LeftHip},
	{pose.RightShoulder, pose.RightHip},
	{pose.LeftHip, pose.RightHip},
	{pose.LeftHip, pose.LeftKnee},
	{pose.LeftKnee, pose.LeftAnkle},
	{pose.RightHip, pose.RightKnee},
	{pose.RightKnee, pose.RightAnkle},
	{pose.Nose, pose.LeftEye},
	{pose.Nose, pose.RightEye},
	{pose.LeftEye, pose.LeftEar},
	{pose.RightEye, pose.RightEar},
}

// Renderer draws the overlay and owns the display window.
type Renderer struct {
	window *gocv.Window
	target string // OSC destination shown on the panel
}

// NewRenderer creates the display window.
func NewRenderer(title, target string) *Renderer {
	return &Renderer{
		window: gocv.NewWindow(title),
		target: target,
	}
}

// Draw renders the overlay onto img in place. skel may be nil when
// nobody was detected this frame.
func (r *Renderer) Draw(img *gocv.Mat, st tracking.State, fps float64, skel *pose.Skeleton) {
	width := img.Cols()
	height := img.Rows()

	r.drawPanel(img, st, fps)

	if st.Detected {
		r.drawMarker(img, st, width, height)
	}
	if skel != nil {
		drawSkeleton(img, skel, width, height)
	}
}

// drawPanel blends a dark info panel into the top-left corner and
// writes the status lines onto it.
func (r *Renderer) drawPanel(img *gocv.Mat, st tracking.State, fps float64) {
	panel := img.Clone()
	defer panel.Close()

	gocv.Rectangle(&panel, image.Rect(10, 10, 400, 150), colorBlack, -1)
	gocv.AddWeighted(panel, 0.6, *img, 0.4, 0, img)

	font := gocv.FontHersheySimplex
	y := 35

	gocv.PutText(img, fmt.Sprintf("FPS: %.1f", fps),
		image.Pt(20, y), font, 0.6, colorGreen, 2)
	y += 30

	statusText := "NO PERSON"
	statusColor := colorRed
	if st.Detected {
		statusText = "TRACKING"
		statusColor = colorGreen
	}
	gocv.PutText(img, "Status: "+statusText,
		image.Pt(20, y), font, 0.6, statusColor, 2)
	y += 30

	gocv.PutText(img, fmt.Sprintf("X: %.3f | Y: %.3f", st.X, st.Y),
		image.Pt(20, y), font, 0.6, colorWhite, 2)
	y += 30

	gocv.PutText(img, "OSC: "+r.target,
		image.Pt(20, y), font, 0.5, colorGray, 1)
}

// drawMarker places a crosshair and circle at the tracked position.
func (r *Renderer) drawMarker(img *gocv.Mat, st tracking.State, width, height int) {
	cx := int(st.X * float64(width))
	cy := int(st.Y * float64(height))

	const arm = 15
	gocv.Line(img, image.Pt(cx-arm, cy), image.Pt(cx+arm, cy), colorYellow, 2)
	gocv.Line(img, image.Pt(cx, cy-arm), image.Pt(cx, cy+arm), colorYellow, 2)
	gocv.Circle(img, image.Pt(cx, cy), 15, colorYellow, 2)
}

// drawSkeleton renders limb lines and joint dots for the detection.
func drawSkeleton(img *gocv.Mat, skel *pose.Skeleton, width, height int) {
	pt := func(i int) image.Point {
		lm := skel.Landmarks[i]
		return image.Pt(
			int(tracking.Clamp01(lm.X)*float64(width)),
			int(tracking.Clamp01(lm.Y)*float64(height)),
		)
	}

	const minScore = 0.3

	for _, limb := range skeleton {
		a, b := skel.Landmarks[limb[0]], skel.Landmarks[limb[1]]
		if a.Score < minScore || b.Score < minScore {
			continue
		}
		gocv.Line(img, pt(limb[0]), pt(limb[1]), colorLimb, 2)
	}

	for i, lm := range skel.Landmarks {
		if lm.Score < minScore {
			continue
		}
		gocv.Circle(img, pt(i), 3, colorGreen, -1)
	}
}

// Show displays the frame and polls the keyboard.
// Returns true when the user pressed 'q'.
func (r *Renderer) Show(img gocv.Mat) bool {
	r.window.IMShow(img)
	return r.window.WaitKey(1) == 'q'
}

// Close destroys the display window.
func (r *Renderer) Close() error {
	return r.window.Close()
}
