package pose

import "testing"

func TestSkeleton_Visible(t *testing.T) {
	var skel Skeleton
	for i := range skel.Landmarks {
		skel.Landmarks[i].Score = 0.1
	}
	skel.Landmarks[Nose].Score = 0.9
	skel.Landmarks[LeftShoulder].Score = 0.5
	skel.Landmarks[RightShoulder].Score = 0.5

	if got := skel.Visible(0.5); got != 3 {
		t.Errorf("Visible(0.5): got %d, want 3", got)
	}
	if got := skel.Visible(0.05); got != NumLandmarks {
		t.Errorf("Visible(0.05): got %d, want %d", got, NumLandmarks)
	}
}

func TestSkeletonAt(t *testing.T) {
	skel := SkeletonAt(0.3, 0.7)

	nose := skel.Landmarks[Nose]
	if nose.X != 0.3 || nose.Y != 0.7 {
		t.Errorf("nose at (%v, %v), want (0.3, 0.7)", nose.X, nose.Y)
	}
	if skel.Visible(1.0) != NumLandmarks {
		t.Error("SkeletonAt should produce fully confident landmarks")
	}
}

func TestNewMoveNet_MissingModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "/nonexistent/path/model.onnx"

	_, err := NewMoveNet(cfg)
	if err == nil {
		t.Error("Expected error for invalid model path")
	}
}
