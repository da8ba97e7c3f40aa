// Package middleware provides web UI middleware.
package middleware

import (
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
)

// LoadSession attaches the visitor's existing session, if any. It never
// creates one, so read-only page views leave the store untouched.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess := lookupSession(store, r); sess != nil {
				r = r.WithContext(session.WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EnsureSession guarantees a session for routes that change modal state.
// A session already attached by LoadSession is reused. New sessions are
// created at most as fast as limiter allows per client IP; a nil limiter
// allows all.
func EnsureSession(store *session.Store, secure bool, limiter *apimw.RateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			if sess := lookupSession(store, r); sess != nil {
				next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
				return
			}

			if limiter != nil {
				if ip := apimw.ClientIP(r); !limiter.Allow(ip) {
					logger.Warn("session creation rate limited", zap.String("client_ip", ip))
					w.Header().Set("Retry-After", "60")
					http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
					return
				}
			}

			sess, err := store.Create()
			if err != nil {
				logger.Error("failed to create visitor session", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
				Expires:  sess.ExpiresAt,
			})

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func lookupSession(store *session.Store, r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}
	sess, ok := store.Get(cookie.Value)
	if !ok {
		return nil
	}
	return sess
}

// Language resolves the visitor's language and stores a localizer in the
// request context. A language picked through the query is persisted.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := i18n.ResolveTag(r)
		if persist {
			i18n.SetLanguageCookie(w, tag)
		}
		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(i18n.WithLocalizer(r.Context(), i18n.NewLocalizer(tag))))
	})
}
