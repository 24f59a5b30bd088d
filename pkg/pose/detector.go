// Package pose provides single-person pose estimation backends.
package pose

import "gocv.io/x/gocv"

// Detector is the interface for pose estimation backends.
// Implementations detect at most one person per frame.
type Detector interface {
	// Detect runs pose estimation on a BGR frame.
	// A nil skeleton with a nil error means no person was found;
	// absence is a normal result, not an error.
	Detect(frame gocv.Mat) (*Skeleton, error)

	// Close releases resources
	Close() error
}

// Config holds detector configuration
type Config struct {
	ModelPath    string  // Path to ONNX model
	ScoreThresh  float64 // Minimum per-keypoint confidence (default 0.3)
	MinKeypoints int     // Visible keypoints required to count as a person
	InputWidth   int     // Model input width
	InputHeight  int     // Model input height
}

// DefaultConfig returns production defaults for MoveNet Lightning
func DefaultConfig() Config {
	return Config{
		ModelPath:    "models/movenet_singlepose_lightning.onnx",
		ScoreThresh:  0.3,
		MinKeypoints: 4,
		InputWidth:   192,
		InputHeight:  192,
	}
}
