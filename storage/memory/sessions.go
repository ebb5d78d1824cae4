package memory

import (
	"context"
	"fmt"
	"sync"

	"picoweb/core/session"
)

// SessionStore keeps sessions in memory keyed by token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session.Session),
	}
}

// Create claims the session's token. An already-claimed token reports
// session.ErrTokenExists and leaves the existing session untouched.
func (s *SessionStore) Create(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.Token]; exists {
		return session.ErrTokenExists
	}
	s.sessions[sess.Token] = *sess
	return nil
}

// FindByToken returns the session for token, expired or not; expiry policy
// belongs to the manager.
func (s *SessionStore) FindByToken(_ context.Context, token string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("%w: token %q", session.ErrNotFound, token)
	}
	return &sess, nil
}

// DeleteExpired removes every expired session and reports the count.
func (s *SessionStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, sess := range s.sessions {
		if sess.IsExpired() {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many sessions are stored, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
