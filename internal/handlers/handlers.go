// Package handlers serves the dashboard page, the UI action endpoints the
// page script posts to, and the WebSocket that carries container patches.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/XavierBriggs/Janus/adapters/analysisapi"
	"github.com/XavierBriggs/Janus/internal/dashboard"
	"github.com/XavierBriggs/Janus/internal/format"
	"github.com/XavierBriggs/Janus/internal/hub"
	"github.com/XavierBriggs/Janus/internal/logger"
	"github.com/XavierBriggs/Janus/internal/navigator"
	"github.com/XavierBriggs/Janus/internal/render"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// StatsReporter exposes analysis client counters for the health endpoint
type StatsReporter interface {
	GetStats() analysisapi.RequestStats
}

// Options configures a Handler
type Options struct {
	Manager        *dashboard.Manager
	Hub            *hub.Hub
	Analysis       StatsReporter
	Logger         *logger.Logger
	AllowedOrigins []string
	SessionTTL     time.Duration
	SecureCookies  bool
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	manager  *dashboard.Manager
	hub      *hub.Hub
	analysis StatsReporter
	log      *logger.Logger
	origins  []string
	ttl      time.Duration
	secure   bool
	ctx      context.Context
}

// DateResponse is returned by the date navigation endpoints
type DateResponse struct {
	Date    string `json:"date"`
	Display string `json:"display"`
}

// TabResponse tells the page where to scroll after a tab switch
type TabResponse struct {
	OK       bool   `json:"ok"`
	ScrollTo string `json:"scroll_to"`
}

// ToggleResponse reports a card's new detail state
type ToggleResponse struct {
	GameID   string `json:"game_id"`
	Expanded bool   `json:"expanded"`
}

// NewHandler creates a new handler. ctx bounds the lifetime of WebSocket pumps.
func NewHandler(ctx context.Context, opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		manager:  opts.Manager,
		hub:      opts.Hub,
		analysis: opts.Analysis,
		log:      log.WithPrefix("HTTP"),
		origins:  opts.AllowedOrigins,
		ttl:      opts.SessionTTL,
		secure:   opts.SecureCookies,
		ctx:      ctx,
	}
}

// HealthCheck returns the health status of the dashboard
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "janus",
		"sessions":  h.manager.Count(),
	}
	if h.hub != nil {
		health["hub"] = h.hub.GetMetrics()
	}
	if h.analysis != nil {
		health["analysis"] = h.analysis.GetStats()
	}

	h.respondJSON(w, http.StatusOK, health)
}

// Index renders the full dashboard for the request's session
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	doc, err := render.DatePage(s.Page())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to render page", err)
		return
	}

	templ.Handler(render.Component(doc)).ServeHTTP(w, r)
}

// StepBackward moves the session one day back
func (h *Handler) StepBackward(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	date := s.StepBackward()
	h.persist(r.Context(), s)

	h.respondJSON(w, http.StatusOK, DateResponse{
		Date:    format.ISODate(date),
		Display: format.DisplayDate(date),
	})
}

// StepForward moves the session one day forward, refusing to pass today
func (h *Handler) StepForward(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	date, err := s.StepForward()
	if errors.Is(err, dashboard.ErrFutureDate) {
		h.respondError(w, http.StatusConflict, navigator.FutureDateNotice, nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to change date", err)
		return
	}
	h.persist(r.Context(), s)

	h.respondJSON(w, http.StatusOK, DateResponse{
		Date:    format.ISODate(date),
		Display: format.DisplayDate(date),
	})
}

// ActivateTab switches the active tab
func (h *Handler) ActivateTab(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	target, err := s.ActivateTab(chi.URLParam(r, "tab"))
	if errors.Is(err, dashboard.ErrUnknownTab) {
		h.respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to switch tab", err)
		return
	}
	h.persist(r.Context(), s)

	h.respondJSON(w, http.StatusOK, TabResponse{OK: true, ScrollTo: target})
}

// ToggleDetail expands or collapses a game card's detailed analysis
func (h *Handler) ToggleDetail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	gameID := chi.URLParam(r, "id")
	expanded, err := s.ToggleDetail(gameID)
	if errors.Is(err, dashboard.ErrUnknownGame) {
		h.respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to toggle details", err)
		return
	}

	h.respondJSON(w, http.StatusOK, ToggleResponse{GameID: gameID, Expanded: expanded})
}

// Retry re-issues the last fetch of a container
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	switch err := s.Retry(name); {
	case errors.Is(err, dashboard.ErrUnknownContainer):
		h.respondError(w, http.StatusNotFound, "unknown container: "+name, nil)
	case errors.Is(err, dashboard.ErrNothingToRetry):
		h.respondError(w, http.StatusConflict, "nothing to retry for "+name, nil)
	case err != nil:
		h.respondError(w, http.StatusInternalServerError, "failed to retry", err)
	default:
		h.respondJSON(w, http.StatusAccepted, map[string]interface{}{"ok": true, "container": name})
	}
}

// GetContainer returns the current markup of one container
func (h *Handler) GetContainer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	markup, err := s.ContainerHTML(name)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "unknown container: "+name, nil)
		return
	}

	templ.Handler(templ.Raw(markup)).ServeHTTP(w, r)
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) (*dashboard.Session, bool) {
	s, err := h.manager.Open(r.Context(), sessionID(r))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to open session", err)
		return nil, false
	}
	return s, true
}

func (h *Handler) persist(ctx context.Context, s *dashboard.Session) {
	if err := h.manager.Persist(ctx, s); err != nil {
		h.log.Warnf("%v", err)
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Errorf("error encoding response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		h.log.Errorf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		h.log.Errorf("error encoding error response: %v", err)
	}
}
