// Package config holds the runtime configuration for stagetrack.
// All values come from CLI flags; there is no config file and no
// environment lookup for program settings.
package config

import "github.com/teslashibe/go-stagetrack/pkg/capture"

// Mode selects the pose inference strategy.
type Mode string

const (
	// ModeLive queries a stateful always-on detector once per frame.
	ModeLive Mode = "live"

	// ModeVideo runs the detector in video mode, feeding it a strictly
	// increasing millisecond timestamp per frame.
	ModeVideo Mode = "video"
)

// Config holds all settings for a tracking run.
type Config struct {
	// === OSC output ===
	ConsoleIP   string // Destination host for the lighting console
	ConsolePort int    // Destination UDP port

	// === Camera ===
	CameraID int  // Device index
	Width    int  // Requested frame width (hint, device may grant less)
	Height   int  // Requested frame height
	Mirror   bool // Flip frames horizontally for a mirror view

	// === Pose inference ===
	Mode      Mode   // live or video
	ModelPath string // Path to the single-pose ONNX model

	// === Presentation ===
	Headless      bool // Disable the debug overlay window
	Dashboard     bool // Serve the web status dashboard
	DashboardPort int  // Dashboard listen port

	// === Logging ===
	LogLevel string
}

// Default returns the recommended configuration. Camera fields are
// seeded from the capture package so the two stay in step.
func Default() Config {
	cam := capture.DefaultConfig()

	return Config{
		ConsoleIP:   "127.0.0.1",
		ConsolePort: 8000,

		CameraID: cam.DeviceID,
		Width:    cam.Width,
		Height:   cam.Height,
		Mirror:   cam.Mirror,

		Mode:      ModeLive,
		ModelPath: "models/movenet_singlepose_lightning.onnx",

		Headless:      false,
		Dashboard:     false,
		DashboardPort: 8080,

		LogLevel: "info",
	}
}

// Validate checks if the config values are usable.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.ConsoleIP == "" {
		errors = append(errors, "console IP must not be empty")
	}
	if c.ConsolePort < 1 || c.ConsolePort > 65535 {
		errors = append(errors, "console port must be between 1 and 65535")
	}
	if c.CameraID < 0 {
		errors = append(errors, "camera index must be >= 0")
	}
	if c.Width < 160 || c.Height < 120 {
		errors = append(errors, "resolution must be at least 160x120")
	}
	if c.Mode != ModeLive && c.Mode != ModeVideo {
		errors = append(errors, "mode must be live or video")
	}
	if c.ModelPath == "" {
		errors = append(errors, "model path must not be empty")
	}
	if c.Dashboard && (c.DashboardPort < 1 || c.DashboardPort > 65535) {
		errors = append(errors, "dashboard port must be between 1 and 65535")
	}

	return errors
}
