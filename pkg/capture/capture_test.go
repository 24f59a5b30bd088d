package capture

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("resolution: got %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
	if !cfg.Mirror {
		t.Error("mirror view should be on by default")
	}
	if cfg.DeviceID != 0 {
		t.Errorf("device: got %d, want 0", cfg.DeviceID)
	}
}

// TestOpenWebcam_InvalidDevice checks that a bad device index fails
// at construction, before any frame is read.
func TestOpenWebcam_InvalidDevice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeviceID = 999

	w, err := OpenWebcam(cfg)
	if err == nil {
		// Some capture backends expose virtual devices at high
		// indices; nothing to assert on such a machine.
		w.Close()
		t.Skip("device 999 unexpectedly present, skipping")
	}
}
