// Package session keeps per-visitor state in memory. Each session owns the
// contact flow of one visitor.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/metrics"
)

// CookieName is the visitor session cookie.
const CookieName = "portfolio_session"

const cleanupInterval = 5 * time.Minute

type Session struct {
	ID        string
	Flow      *contact.Flow
	CreatedAt time.Time
	ExpiresAt time.Time

	mu     sync.Mutex
	notice contact.Notice
}

// Notify stores a failure notice until the next TakeNotice.
func (s *Session) Notify(n contact.Notice) {
	s.mu.Lock()
	s.notice = n
	s.mu.Unlock()
}

// TakeNotice returns the pending notice and clears it, so each notice is
// shown once.
func (s *Session) TakeNotice() (contact.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = ""
	return n, n != ""
}

// FlowFactory builds the contact flow of a new session. Failure notices of
// the flow must go to notifier.
type FlowFactory func(notifier contact.Notifier) *contact.Flow

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	newFlow  FlowFactory
	logger   *zap.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func NewStore(ttl time.Duration, newFlow FlowFactory, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		newFlow:  newFlow,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go s.cleanup(cleanupInterval)
	return s
}

func (s *Store) Create() (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	session.Flow = s.newFlow(session)

	s.mu.Lock()
	s.sessions[id] = session
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	return session, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, false
	}
	return session, true
}

// Delete removes a session and stops its flow.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	if ok {
		session.Flow.Stop()
	}
	metrics.SessionsActive.Set(float64(n))
}

// Len returns the number of stored sessions, expired ones included until
// the next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the cleanup goroutine and every flow.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		sessions := s.sessions
		s.sessions = make(map[string]*Session)
		s.mu.Unlock()

		for _, session := range sessions {
			session.Flow.Stop()
		}
		metrics.SessionsActive.Set(0)
	})
}

func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

// sweep deletes sessions expired at now and stops their flows.
func (s *Store) sweep(now time.Time) int {
	var expired []*Session

	s.mu.Lock()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, session := range expired {
		session.Flow.Stop()
	}
	if len(expired) > 0 {
		s.logger.Debug("expired visitor sessions removed", zap.Int("count", len(expired)))
	}
	metrics.SessionsActive.Set(float64(n))
	return len(expired)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return nil
}
