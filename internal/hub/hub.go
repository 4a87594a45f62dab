// Package hub routes container patches to the WebSocket clients of the
// session they belong to.
package hub

import (
	"context"
	"sync"
	"time"

	"github.com/XavierBriggs/Janus/internal/client"
	"github.com/XavierBriggs/Janus/internal/logger"
	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	broadcastBufferSize = 1000
	metricsInterval     = 30 * time.Second
)

type envelope struct {
	sessionID string
	message   models.ServerMessage
}

// Hub maintains the active clients grouped by session
type Hub struct {
	sessions  map[string]map[*client.Client]bool
	clientsMu sync.RWMutex

	broadcast  chan envelope
	register   chan *client.Client
	unregister chan *client.Client
	done       chan struct{}
	log        *logger.Logger

	totalConnections int64
	totalMessages    int64
	droppedMessages  int64
	metricsMu        sync.Mutex
}

// NewHub creates a new Hub instance
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		sessions:   make(map[string]map[*client.Client]bool),
		broadcast:  make(chan envelope, broadcastBufferSize),
		register:   make(chan *client.Client),
		unregister: make(chan *client.Client),
		done:       make(chan struct{}),
		log:        log.WithPrefix("Hub"),
	}
}

// Run starts the hub's main loop; it returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	h.log.Infof("hub started")

	go h.reportMetrics(ctx)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

// Register adds a client. Messages published after Register returns reach it.
// Returns false once the hub has shut down.
func (h *Hub) Register(c *client.Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client
func (h *Hub) Unregister(c *client.Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues a container patch for every client of a session.
// It never blocks; when the buffer is full the patch is dropped.
func (h *Hub) Publish(sessionID string, patch models.Patch) {
	env := envelope{
		sessionID: sessionID,
		message: models.ServerMessage{
			Type:      models.MessageTypeContainerUpdate,
			Payload:   patch,
			Timestamp: time.Now(),
		},
	}

	select {
	case h.broadcast <- env:
	default:
		h.incrementDropped()
		h.log.Warnf("broadcast buffer full, dropping patch for %s", patch.Target)
	}
}

func (h *Hub) registerClient(c *client.Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	clients, ok := h.sessions[c.SessionID]
	if !ok {
		clients = make(map[*client.Client]bool)
		h.sessions[c.SessionID] = clients
	}
	clients[c] = true
	h.incrementTotalConnections()

	h.log.Debugf("client %s connected to session %s (%d sockets)", c.ID, c.SessionID, len(clients))
}

func (h *Hub) unregisterClient(c *client.Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	clients, ok := h.sessions[c.SessionID]
	if !ok || !clients[c] {
		return
	}
	delete(clients, c)
	close(c.Send)
	if len(clients) == 0 {
		delete(h.sessions, c.SessionID)
	}
	h.log.Debugf("client %s disconnected from session %s", c.ID, c.SessionID)
}

// deliver sends a message to every client of its session
func (h *Hub) deliver(env envelope) {
	h.clientsMu.RLock()
	clients := make([]*client.Client, 0, len(h.sessions[env.sessionID]))
	for c := range h.sessions[env.sessionID] {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	sent := 0
	for _, c := range clients {
		if c.TrySend(env.message) {
			sent++
			continue
		}
		// Too slow to keep up; the page resyncs when it reconnects
		h.log.Warnf("client %s buffer full, disconnecting", c.ID)
		go h.Unregister(c)
	}

	if sent > 0 {
		h.incrementTotalMessages()
	}
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() map[string]interface{} {
	h.clientsMu.RLock()
	activeSessions := len(h.sessions)
	activeClients := 0
	for _, clients := range h.sessions {
		activeClients += len(clients)
	}
	h.clientsMu.RUnlock()

	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":     activeClients,
		"active_sessions":    activeSessions,
		"total_connections":  h.totalConnections,
		"total_messages":     h.totalMessages,
		"dropped_messages":   h.droppedMessages,
		"broadcast_capacity": cap(h.broadcast),
		"broadcast_usage":    len(h.broadcast),
	}
}

// GetClientCount returns the number of connected sockets
func (h *Hub) GetClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	count := 0
	for _, clients := range h.sessions {
		count += len(clients)
	}
	return count
}

// SessionClients returns the number of sockets open for a session
func (h *Hub) SessionClients(sessionID string) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) shutdown() {
	close(h.done)

	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.log.Infof("shutting down hub (%d sessions)", len(h.sessions))
	for id, clients := range h.sessions {
		for c := range clients {
			close(c.Send)
		}
		delete(h.sessions, id)
	}
}

func (h *Hub) reportMetrics(ctx context.Context) {
	ticker := time.NewTicker(metricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics := h.GetMetrics()
			h.log.Debugf("clients=%d sessions=%d total_connections=%d messages=%d dropped=%d",
				metrics["active_clients"],
				metrics["active_sessions"],
				metrics["total_connections"],
				metrics["total_messages"],
				metrics["dropped_messages"])
		}
	}
}

func (h *Hub) incrementTotalConnections() {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	h.totalConnections++
}

func (h *Hub) incrementTotalMessages() {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	h.totalMessages++
}

func (h *Hub) incrementDropped() {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	h.droppedMessages++
}
