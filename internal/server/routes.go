package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/star88etti/health-buddie-log/internal/middleware"
)

// NewRouter constructs the HTTP handler for the stub backend.
//
// Routes:
//
//	GET  /health-data      → Handler.HealthData
//	GET  /messages         → Handler.Messages (connectivity probe)
//	GET  /api/messages     → Handler.Messages
//	POST /api/messages     → Handler.PostMessage
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health-data", h.HealthData)
	r.Get("/messages", h.Messages)

	r.Route("/api", func(r chi.Router) {
		r.Get("/messages", h.Messages)
		r.Post("/messages", h.PostMessage)
	})

	return r
}
