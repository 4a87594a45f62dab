package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// requestTimeout bounds page and UI action requests; the WebSocket is exempt
const requestTimeout = 30 * time.Second

// Routes builds the dashboard router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(chimiddleware.Recoverer)

	// Cross-origin access is opt-in; credentials only go to listed origins
	if len(h.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.origins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: !allowsAnyOrigin(h.origins),
			MaxAge:           300,
		}))
	}

	r.Get("/health", h.HealthCheck)
	r.Get("/metrics", h.HandleMetrics)

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/ws", h.HandleWebSocket)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(requestTimeout))

			r.Get("/", h.Index)

			r.Route("/ui", func(r chi.Router) {
				r.Post("/date/prev", h.StepBackward)
				r.Post("/date/next", h.StepForward)
				r.Post("/tabs/{tab}", h.ActivateTab)
				r.Post("/games/{id}/toggle", h.ToggleDetail)
				r.Post("/containers/{name}/retry", h.Retry)
				r.Get("/containers/{name}", h.GetContainer)
			})
		})
	})

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
