// stagetrack tracks a person with a webcam and streams the nose
// position over OSC to a grandMA3 lighting console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teslashibe/go-stagetrack/internal/config"
	"github.com/teslashibe/go-stagetrack/internal/log"
	"github.com/teslashibe/go-stagetrack/pkg/app"
	"github.com/teslashibe/go-stagetrack/pkg/capture"
	"github.com/teslashibe/go-stagetrack/pkg/osc"
	"github.com/teslashibe/go-stagetrack/pkg/overlay"
	"github.com/teslashibe/go-stagetrack/pkg/pose"
	"github.com/teslashibe/go-stagetrack/pkg/web"
)

// Version is the application version.
const Version = "0.1.0"

var (
	cfg      = config.Default()
	mode     string
	noMirror bool
)

var rootCmd = &cobra.Command{
	Use:           "stagetrack",
	Short:         "Person tracker with OSC output for grandMA3",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	f := rootCmd.Flags()

	f.StringVar(&cfg.ConsoleIP, "ip", cfg.ConsoleIP, "IP address of the grandMA3 console")
	f.IntVar(&cfg.ConsolePort, "port", cfg.ConsolePort, "OSC port")
	f.IntVar(&cfg.CameraID, "camera", cfg.CameraID, "Camera device index")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Requested frame width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Requested frame height")
	f.BoolVar(&noMirror, "no-mirror", false, "Disable the horizontal mirror flip")
	f.StringVar(&mode, "mode", string(cfg.Mode), "Pose inference strategy: live or video")
	f.StringVar(&cfg.ModelPath, "model", cfg.ModelPath, "Path to the single-pose ONNX model")
	f.BoolVar(&cfg.Headless, "headless", false, "Run without the debug overlay window")
	f.BoolVar(&cfg.Dashboard, "dashboard", false, "Serve the web status dashboard")
	f.IntVar(&cfg.DashboardPort, "dashboard-port", cfg.DashboardPort, "Dashboard listen port")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
}

func run() error {
	cfg.Mode = config.Mode(mode)
	cfg.Mirror = !noMirror

	log.Init(cfg.LogLevel)

	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	// Camera first: a bad device index must abort before anything
	// else is acquired.
	cam, err := capture.OpenWebcam(capture.Config{
		DeviceID: cfg.CameraID,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Mirror:   cfg.Mirror,
	})
	if err != nil {
		return err
	}
	width, height := cam.Size()
	log.Info("camera ready", "device", cfg.CameraID, "width", width, "height", height)

	detector, err := newDetector()
	if err != nil {
		cam.Close()
		return err
	}
	log.Info("pose model loaded", "mode", cfg.Mode, "model", cfg.ModelPath)

	publisher := osc.NewClient(cfg.ConsoleIP, cfg.ConsolePort)
	log.Info("osc target", "addr", publisher.Target())

	runID := uuid.NewString()

	opts := app.Options{
		RunID:     runID,
		Source:    cam,
		Detector:  detector,
		Publisher: publisher,
	}
	if !cfg.Headless {
		opts.Renderer = overlay.NewRenderer("Person Tracker - Press Q to quit", publisher.Target())
	}
	if cfg.Dashboard {
		opts.Dashboard = web.NewServer(cfg.DashboardPort, runID, publisher.Target())
	}

	a, err := app.New(opts)
	if err != nil {
		cam.Close()
		detector.Close()
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

// newDetector builds the configured inference strategy: the bare
// always-on detector in live mode, or the timestamped video-mode
// wrapper around it.
func newDetector() (pose.Detector, error) {
	poseCfg := pose.DefaultConfig()
	poseCfg.ModelPath = cfg.ModelPath

	detector, err := pose.NewMoveNet(poseCfg)
	if err != nil {
		return nil, err
	}

	if cfg.Mode == config.ModeVideo {
		return pose.NewVideo(detector), nil
	}
	return detector, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
