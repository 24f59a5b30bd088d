package pose

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// MoveNetDetector runs MoveNet single-pose inference through the
// OpenCV DNN module. The network is stateful and always-on: it is
// loaded once and queried synchronously for every frame.
type MoveNetDetector struct {
	net    gocv.Net
	config Config
	mu     sync.Mutex // Protects inference
}

// NewMoveNet creates a new MoveNet single-pose detector
func NewMoveNet(cfg Config) (*MoveNetDetector, error) {
	// Check if model file exists first
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}

	// Load ONNX model
	net := gocv.ReadNetFromONNX(cfg.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose model from %s", cfg.ModelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &MoveNetDetector{
		net:    net,
		config: cfg,
	}, nil
}

// Detect runs pose estimation on a BGR frame.
// Returns nil when no person is visible.
func (d *MoveNetDetector) Detect(frame gocv.Mat) (*Skeleton, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if frame.Empty() {
		return nil, fmt.Errorf("empty frame")
	}

	// Create blob from image. swapRB converts the BGR frame to the
	// RGB ordering the model was trained on.
	blob := gocv.BlobFromImage(frame, 1.0/255.0,
		image.Pt(d.config.InputWidth, d.config.InputHeight),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")

	output := d.net.Forward("")
	defer output.Close()

	return d.parseOutput(output)
}

// parseOutput parses the MoveNet output tensor.
// Output shape: [1, 1, 17, 3] - each keypoint is (y, x, score),
// already normalized to the frame.
func (d *MoveNetDetector) parseOutput(output gocv.Mat) (*Skeleton, error) {
	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read model output: %w", err)
	}
	if len(data) < NumLandmarks*3 {
		return nil, fmt.Errorf("unexpected output size %d", len(data))
	}

	var skel Skeleton
	for i := 0; i < NumLandmarks; i++ {
		skel.Landmarks[i] = Landmark{
			Y:     float64(data[i*3+0]),
			X:     float64(data[i*3+1]),
			Score: float64(data[i*3+2]),
		}
	}

	// Too few confident keypoints means nobody is in frame
	if skel.Visible(d.config.ScoreThresh) < d.config.MinKeypoints {
		return nil, nil
	}

	return &skel, nil
}

// Close releases the detector resources
func (d *MoveNetDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.net.Close()
}
