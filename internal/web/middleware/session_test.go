package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apimw "github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(time.Hour, func(n contact.Notifier) *contact.Flow { return contact.NewFlow(nil, contact.WithNotifier(n)) }, nil)
	t.Cleanup(store.Close)
	return store
}

func TestEnsureSession_CreatesSession(t *testing.T) {
	store := newStore(t)

	var got *session.Session
	handler := EnsureSession(store, false, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got == nil {
		t.Fatal("handler saw no session")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName || cookies[0].Value != got.ID {
		t.Fatalf("cookies = %v, want session cookie for %s", cookies, got.ID)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d sessions, want 1", store.Len())
	}
}

func TestEnsureSession_ReusesValidSession(t *testing.T) {
	store := newStore(t)
	existing, _ := store.Create()

	var got *session.Session
	handler := EnsureSession(store, false, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: existing.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got != existing {
		t.Error("handler did not get the existing session")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie reissued for a valid session")
	}
}

func TestEnsureSession_ReplacesUnknownSession(t *testing.T) {
	store := newStore(t)

	handler := EnsureSession(store, true, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "stale" {
		t.Fatalf("cookies = %v, want a fresh session cookie", cookies)
	}
	if !cookies[0].Secure {
		t.Error("secure cookies requested but cookie is not Secure")
	}
}

func TestLoadSession_NeverCreates(t *testing.T) {
	store := newStore(t)

	var sawSession bool
	handler := LoadSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSession = session.FromContext(r.Context()) != nil
	}))

	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if len(rec.Result().Cookies()) != 0 {
			t.Fatal("cookie-less page view was issued a session cookie")
		}
	}
	if sawSession {
		t.Error("handler saw a session without a cookie")
	}
	if store.Len() != 0 {
		t.Errorf("store has %d sessions after cookie-less page views, want 0", store.Len())
	}
}

func TestLoadSession_AttachesExisting(t *testing.T) {
	store := newStore(t)
	existing, _ := store.Create()

	var got *session.Session
	handler := LoadSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: existing.ID})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != existing {
		t.Error("handler did not get the existing session")
	}
}

func TestEnsureSession_LimitsCreationPerIP(t *testing.T) {
	store := newStore(t)
	limiter := apimw.NewRateLimiter(1, 2)

	handler := EnsureSession(store, false, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/contact/open", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
	if store.Len() != 2 {
		t.Errorf("store has %d sessions, want 2", store.Len())
	}
}

func TestEnsureSession_LimitSkipsExistingSessions(t *testing.T) {
	store := newStore(t)
	existing, _ := store.Create()
	limiter := apimw.NewRateLimiter(1, 1)
	limiter.Allow("192.0.2.1")

	called := 0
	handler := EnsureSession(store, false, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/contact", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: existing.ID})
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
	if called != 3 {
		t.Errorf("handler called %d times, want 3", called)
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		target     string
		wantLang   string
		wantCookie bool
	}{
		{"/", "es", false},
		{"/?lang=en", "en", true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var lang string
			handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lang = i18n.FromContext(r.Context()).Lang()
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.target, nil))

			if lang != tt.wantLang {
				t.Errorf("lang = %q, want %q", lang, tt.wantLang)
			}
			if gotCookie := len(rec.Result().Cookies()) == 1; gotCookie != tt.wantCookie {
				t.Errorf("language cookie set = %v, want %v", gotCookie, tt.wantCookie)
			}
		})
	}
}
