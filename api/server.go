/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer connecting URLs to handlers; the calendar UI
  is a separate app that talks to this API over CORS.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend dev server

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/schedule/{year}/{month}", func(r chi.Router) {
			r.Get("/", h.GetSchedule)
			r.Get("/report", h.GetShiftLoadReport)
			r.Post("/publish", h.PublishSchedule)
			r.Get("/published", h.GetPublishedSchedule)
			r.Post("/overrides", h.AddOverride)
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", h.GetRoster)
			r.Put("/", h.PutRoster)
		})

		r.Get("/holidays/{year}", h.ListHolidays)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Basecamp rota service. API at /api/schedule/{year}/{month}\n"))
	})

	return r
}
