// Package capture supplies camera frames to the tracking loop.
package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Source is the interface for frame suppliers.
type Source interface {
	// Read fills dst with the next frame, mirrored when configured.
	// A false return means end-of-stream; the caller stops reading.
	Read(dst *gocv.Mat) bool

	// Close releases the device
	Close() error
}

// Config holds capture configuration.
type Config struct {
	DeviceID int  // Camera device index
	Width    int  // Requested width; the device may grant less
	Height   int  // Requested height
	Mirror   bool // Flip horizontally for a mirror view
}

// DefaultConfig returns the standard 720p mirrored setup.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0,
		Width:    1280,
		Height:   720,
		Mirror:   true,
	}
}

// Webcam reads frames from a local camera through OpenCV.
type Webcam struct {
	cap *gocv.VideoCapture
	cfg Config
}

// OpenWebcam opens the device and applies the resolution hint.
// The granted resolution is whatever the device reports afterwards;
// it is not verified beyond Size().
func OpenWebcam(cfg Config) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("cannot open camera %d", cfg.DeviceID)
	}

	vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))

	return &Webcam{cap: vc, cfg: cfg}, nil
}

// Size returns the resolution the device actually granted.
func (w *Webcam) Size() (width, height int) {
	return int(w.cap.Get(gocv.VideoCaptureFrameWidth)),
		int(w.cap.Get(gocv.VideoCaptureFrameHeight))
}

// Read fills dst with the next frame.
func (w *Webcam) Read(dst *gocv.Mat) bool {
	if !w.cap.Read(dst) || dst.Empty() {
		return false
	}
	if w.cfg.Mirror {
		gocv.Flip(*dst, dst, 1)
	}
	return true
}

// Close releases the camera handle.
func (w *Webcam) Close() error {
	return w.cap.Close()
}
