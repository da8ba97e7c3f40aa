package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/projects"
)

// setupRouter creates and configures the chi router with all routes.
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer(s.logger))
	r.Use(middleware.RequestLogger(s.logger, s.config.Verbose))
	r.Use(middleware.PrometheusMiddleware)
	r.Use(middleware.SecurityHeaders(s.logger))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			JSONError(w, ErrNotFound)
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			JSONError(w, ErrMethodNotAllowed)
		})

		r.Route("/projects", func(r chi.Router) {
			projectHandler := projects.NewHandler(s.projects, s.logger)
			r.Get("/", projectHandler.List)
			r.Get("/{title}", projectHandler.GetByTitle)
		})

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			OK(w, s.config.Version)
		})
	})

	// Health checks
	r.Get("/health", s.healthHandler.Health)
	r.Get("/health/live", s.healthHandler.Live)
	r.Get("/health/ready", s.healthHandler.Ready)

	if s.web != nil {
		r.Mount("/", s.web)
	}

	return r
}
