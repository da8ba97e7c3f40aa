// Package web serves the portfolio site.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/handlers"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
)

//go:embed static
var staticFS embed.FS

// csrfKeyLen is the key length gorilla/csrf requires.
const csrfKeyLen = 32

// Default per-IP session creation limits.
const (
	DefaultSessionsPerMinute = 30
	DefaultSessionBurst      = 10
)

type Server struct {
	handler          *handlers.Handler
	sessions         *session.Store
	sessionLimiter   *apimw.RateLimiter
	csrfKey          []byte
	useSecureCookies bool
	logger           *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithSessionLimiter replaces the default per-IP session creation limiter.
// A nil limiter disables the limit.
func WithSessionLimiter(l *apimw.RateLimiter) Option {
	return func(s *Server) { s.sessionLimiter = l }
}

// NewServer creates the site server. The session store is owned by the
// caller, which must Close it on shutdown.
func NewServer(projects handlers.ProjectSource, sessions *session.Store, csrfKey string, useSecureCookies bool, logger *zap.Logger, opts ...Option) (*Server, error) {
	if len(csrfKey) != csrfKeyLen {
		return nil, fmt.Errorf("csrf key must be %d bytes, got %d", csrfKeyLen, len(csrfKey))
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		handler:          handlers.NewHandler(projects, logger),
		sessions:         sessions,
		sessionLimiter:   apimw.NewRateLimiter(DefaultSessionsPerMinute, DefaultSessionBurst),
		csrfKey:          []byte(csrfKey),
		useSecureCookies: useSecureCookies,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Server) StaticFS() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unrecoverable init error - server cannot function without static assets
		panic(fmt.Sprintf("failed to create static FS: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}

func (s *Server) Sessions() *session.Store {
	return s.sessions
}

func (s *Server) Handler() *handlers.Handler {
	return s.handler
}

func (s *Server) CSRFKey() []byte {
	return s.csrfKey
}
