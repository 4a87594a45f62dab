package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/XavierBriggs/Janus/internal/client"
)

// HandleWebSocket upgrades the connection and binds it to the caller's
// session. Every container is republished once the socket is registered
// so a reconnecting page catches up.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade error: %v", err)
		return
	}

	c := client.NewClient(uuid.New().String(), s.ID(), conn, h.hub, h.log)
	if !h.hub.Register(c) {
		conn.Close()
		return
	}

	// Use handler context, not request context
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)

	s.Resync()
	h.log.Debugf("websocket connection established: %s (session %s)", c.ID, s.ID())
}

// HandleMetrics returns hub metrics
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.hub.GetMetrics())
}

// checkOrigin accepts same-host pages and explicitly listed origins.
// A "*" entry does not extend to sockets, which carry the session cookie.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}

	for _, allowed := range h.origins {
		if allowed != "*" && strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
