// Package app wires capture, inference, publishing and presentation
// into the single-threaded tracking loop and owns its lifecycle:
// acquire at startup, loop, release exactly once on every exit path.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/teslashibe/go-stagetrack/internal/log"
	"github.com/teslashibe/go-stagetrack/pkg/capture"
	"github.com/teslashibe/go-stagetrack/pkg/osc"
	"github.com/teslashibe/go-stagetrack/pkg/overlay"
	"github.com/teslashibe/go-stagetrack/pkg/pose"
	"github.com/teslashibe/go-stagetrack/pkg/tracking"
	"github.com/teslashibe/go-stagetrack/pkg/web"
)

// Options holds the backends an App runs on.
type Options struct {
	// RunID labels this run in logs and on the dashboard.
	// Empty generates a fresh one.
	RunID string

	Source    capture.Source
	Detector  pose.Detector
	Publisher osc.Publisher

	// Renderer is optional; nil runs headless.
	Renderer *overlay.Renderer

	// Dashboard is optional; nil disables the status server.
	Dashboard *web.Server
}

// App is one tracking run.
type App struct {
	runID     string
	source    capture.Source
	detector  pose.Detector
	publisher osc.Publisher
	renderer  *overlay.Renderer
	dashboard *web.Server

	meter *tracking.Meter
	state tracking.State

	closeOnce sync.Once
}

// New assembles an app from already-acquired backends.
func New(opts Options) (*App, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("no frame source")
	}
	if opts.Detector == nil {
		return nil, fmt.Errorf("no pose detector")
	}
	if opts.Publisher == nil {
		return nil, fmt.Errorf("no publisher")
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return &App{
		runID:     runID,
		source:    opts.Source,
		detector:  opts.Detector,
		publisher: opts.Publisher,
		renderer:  opts.Renderer,
		dashboard: opts.Dashboard,
		meter:     tracking.NewMeter(),
		state:     tracking.NewState(),
	}, nil
}

// RunID identifies this run in logs and on the dashboard.
func (a *App) RunID() string {
	return a.runID
}

// State returns the current tracker state.
func (a *App) State() tracking.State {
	return a.state
}

// Run executes the tracking loop until the camera stream ends, the
// user presses 'q', or ctx is cancelled. Errors from inference
// escape the loop; cleanup still runs through Close.
func (a *App) Run(ctx context.Context) error {
	log.Info("tracking started", "run_id", a.runID, "osc_target", a.publisher.Target())

	if a.dashboard != nil {
		a.dashboard.StartAsync()
	}

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			log.Info("interrupted", "frames", a.state.Frames)
			return nil
		default:
		}

		if !a.source.Read(&frame) {
			log.Info("camera stream ended", "frames", a.state.Frames)
			return nil
		}

		skel, err := a.detector.Detect(frame)
		if err != nil {
			return fmt.Errorf("pose inference: %w", err)
		}

		next, publish := tracking.Step(a.state, skel)
		a.state = next

		if publish {
			if err := a.publisher.PublishPosition(next.X, next.Y); err != nil {
				// Fire-and-forget: log and keep tracking.
				log.Warn("publish failed", "error", err)
			}
		}

		fps := a.meter.Tick()

		if a.dashboard != nil {
			a.dashboard.UpdateStatus(next, fps)
		}

		if a.renderer != nil {
			a.renderer.Draw(&frame, next, fps, skel)
			if a.renderer.Show(frame) {
				log.Info("quit requested", "frames", a.state.Frames)
				return nil
			}
		}
	}
}

// Close releases every resource exactly once. Safe to call after
// Run returned for any reason.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		log.Info("cleaning up", "run_id", a.runID)

		if err := a.source.Close(); err != nil {
			log.Warn("camera release failed", "error", err)
		}
		if a.renderer != nil {
			if err := a.renderer.Close(); err != nil {
				log.Warn("window close failed", "error", err)
			}
		}
		if err := a.detector.Close(); err != nil {
			log.Warn("detector close failed", "error", err)
		}
		if err := a.publisher.Close(); err != nil {
			log.Warn("publisher close failed", "error", err)
		}
		if a.dashboard != nil {
			if err := a.dashboard.Shutdown(); err != nil {
				log.Warn("dashboard shutdown failed", "error", err)
			}
		}
	})
}
