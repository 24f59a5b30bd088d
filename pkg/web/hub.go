package web

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// hub fans status snapshots out to connected websocket clients.
// Slow clients are dropped rather than allowed to stall the
// tracking loop.
type hub struct {
	log *slog.Logger

	mu      sync.RWMutex
	clients map[chan []byte]bool
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		log:     logger,
		clients: make(map[chan []byte]bool),
	}
}

// subscribe registers a client and returns its outbound channel.
func (h *hub) subscribe() chan []byte {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	h.clients[ch] = true
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("client connected", "total", count)
	return ch
}

// unsubscribe removes a client and closes its channel.
func (h *hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("client disconnected", "remaining", count)
}

// broadcastJSON encodes v and queues it to every client.
func (h *hub) broadcastJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Warn("broadcast encode failed", "error", err)
		return
	}

	h.mu.Lock()
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
			// Client buffer full - they're too slow
			delete(h.clients, ch)
			close(ch)
			h.log.Warn("dropped slow client")
		}
	}
	h.mu.Unlock()
}

// clientCount returns the number of connected clients.
func (h *hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
