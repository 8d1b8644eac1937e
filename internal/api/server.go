// Package api exposes the engine as a stateless HTTP service. Every request
// carries a full household and rates document; nothing is cached between
// requests, so handlers are safe to fan out across workers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires all routes and middleware.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.Health)
		r.Get("/ladder", h.GetLadder)
		r.Post("/calculate", h.Calculate)
		r.Post("/metrics", h.Metrics)
		r.Post("/project", h.Project)

		if h.Store != nil {
			r.Route("/households", func(r chi.Router) {
				r.Get("/", h.ListHouseholds)
				r.Post("/", h.SaveHousehold)
				r.Get("/{id}", h.GetHousehold)
				r.Delete("/{id}", h.DeleteHousehold)
			})
		}
	})

	return r
}

// ListenAndServe starts the server on addr.
func ListenAndServe(addr string, h *Handler) error {
	return http.ListenAndServe(addr, NewRouter(h))
}
