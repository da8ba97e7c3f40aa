// Package handlers implements the site's page and contact modal handlers.
package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
)

// ProjectSource returns the catalog in display order.
type ProjectSource func() []models.Project

type Handler struct {
	projects ProjectSource
	logger   *zap.Logger
}

func NewHandler(projects ProjectSource, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{projects: projects, logger: logger}
}

// isHTMX reports whether the request came from HTMX and expects a fragment.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// getSession returns the visitor session or writes a 500.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := session.FromContext(r.Context())
	if sess == nil {
		h.logger.Error("visitor session missing from request context", zap.String("path", r.URL.Path))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
	return sess
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Warn("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
