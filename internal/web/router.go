package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	apimw "github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/middleware"
)

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	// Static files (no CSRF, no session)
	r.Handle("/static/*", http.StripPrefix("/static/", s.StaticFS()))

	r.Group(func(r chi.Router) {
		r.Use(markPlaintext)
		r.Use(csrf.Protect(
			s.csrfKey,
			csrf.Secure(s.useSecureCookies),
			csrf.Path("/"),
			csrf.SameSite(csrf.SameSiteLaxMode),
			csrf.ErrorHandler(http.HandlerFunc(s.csrfFailure)),
		))
		r.Use(middleware.Language)
		r.Use(middleware.LoadSession(s.sessions))

		// Page views only read the session.
		r.Get("/", s.handler.ShowHome)
		r.Get("/projects", s.handler.ShowProjects)
		r.Get("/contact", s.handler.ShowContact)

		r.Group(func(r chi.Router) {
			r.Use(middleware.EnsureSession(s.sessions, s.useSecureCookies, s.sessionLimiter, s.logger))

			r.Post("/contact", s.handler.SubmitContact)
			r.Post("/contact/open", s.handler.OpenContact)
			r.Post("/contact/close", s.handler.CloseContact)
		})
	})

	return r
}

func (s *Server) csrfFailure(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("csrf validation failed",
		zap.String("path", r.URL.Path),
		zap.Error(csrf.FailureReason(r)))
	http.Error(w, "Forbidden - invalid CSRF token", http.StatusForbidden)
}

// markPlaintext tells gorilla/csrf when a request arrived over plain HTTP,
// so its HTTPS-only referer check is skipped in local development.
func markPlaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !apimw.IsRequestSecure(r) {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}
