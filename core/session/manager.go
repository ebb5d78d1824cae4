package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// startRetries bounds how many fresh tokens Start tries on collision.
const startRetries = 5

// Manager owns the session lifecycle: creation with collision retry, lookup
// with expiry validation, and expired-session sweeps.
type Manager struct {
	store  Store
	tokens *TokenGenerator
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithTokenGenerator replaces the default token generator.
func WithTokenGenerator(g *TokenGenerator) Option {
	return func(m *Manager) {
		m.tokens = g
	}
}

// WithLogger sets the manager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session manager over store with the given TTL applied
// to every new session.
func NewManager(store Store, ttl time.Duration, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:  store,
		ttl:    ttl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tokens == nil {
		g, err := NewTokenGenerator()
		if err != nil {
			return nil, err
		}
		m.tokens = g
	}
	return m, nil
}

// Start creates a session for userID. Token generation and creation form one
// logical unit: when the store reports a token collision the existing session
// is left untouched and a fresh token is tried, up to startRetries times.
func (m *Manager) Start(ctx context.Context, userID int64) (*Session, error) {
	for attempt := 1; attempt <= startRetries; attempt++ {
		token, err := m.tokens.Generate()
		if err != nil {
			return nil, err
		}

		sess := &Session{
			Token:     token,
			UserID:    userID,
			CreatedAt: time.Now(),
			TTL:       m.ttl,
		}

		err = m.store.Create(ctx, sess)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrTokenExists) {
			return nil, fmt.Errorf("create session: %w", err)
		}

		m.logger.WarnContext(ctx, "session token collision, retrying",
			slog.Int("attempt", attempt),
			slog.Int64("user_id", userID),
		)
	}
	return nil, ErrTokenRetriesExhausted
}

// Find returns the live session for token. Unknown tokens report ErrNotFound
// and expired sessions ErrExpired.
func (m *Manager) Find(ctx context.Context, token string) (*Session, error) {
	sess, err := m.store.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		return nil, ErrExpired
	}
	return sess, nil
}

// CleanupExpired removes expired sessions from the store.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the lifetime applied to new sessions.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
