// Package web provides a read-only status dashboard for a tracking
// run. It observes the tracker; it never controls it.
package web

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-stagetrack/internal/log"
	"github.com/teslashibe/go-stagetrack/pkg/tracking"
)

// Status is the tracker state exposed to dashboard clients.
type Status struct {
	RunID     string  `json:"run_id"`
	FPS       float64 `json:"fps"`
	Detected  bool    `json:"detected"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Frames    uint64  `json:"frames"`
	OSCTarget string  `json:"osc_target"`
}

// Server is the dashboard HTTP/websocket server.
type Server struct {
	app  *fiber.App
	port int
	log  *slog.Logger

	mu     sync.RWMutex
	status Status

	statusHub *hub
}

// NewServer creates a dashboard server for one tracking run.
func NewServer(port int, runID, oscTarget string) *Server {
	logger := log.For("dashboard")

	s := &Server{
		port: port,
		log:  logger,
		status: Status{
			RunID:     runID,
			X:         0.5,
			Y:         0.5,
			OSCTarget: oscTarget,
		},
		statusHub: newHub(logger),
	}

	app := fiber.New(fiber.Config{
		AppName:               "stagetrack dashboard",
		DisableStartupMessage: true,
	})

	app.Get("/api/status", s.handleStatus)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// handleStatus returns the current tracker state.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.status)
}

// handleStatusWS streams state snapshots to one websocket client.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	ch := s.statusHub.subscribe()
	defer s.statusHub.unsubscribe(ch)

	for data := range ch {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// UpdateStatus publishes a new tracker snapshot to clients.
func (s *Server) UpdateStatus(st tracking.State, fps float64) {
	s.mu.Lock()
	s.status.FPS = fps
	s.status.Detected = st.Detected
	s.status.X = st.X
	s.status.Y = st.Y
	s.status.Frames = st.Frames
	snapshot := s.status
	s.mu.Unlock()

	s.statusHub.broadcastJSON(snapshot)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.log.Info("listening", "addr", addr)
		if err := s.app.Listen(addr); err != nil {
			s.log.Warn("server stopped", "error", err)
		}
	}()
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
