package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"picoweb/core/session"
)

// keyPrefix namespaces session keys in the shared database.
const keyPrefix = "session:"

// sessionRecord is the stored JSON shape.
type sessionRecord struct {
	UserID     int64     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	TTLSeconds int64     `json:"ttl_seconds"`
}

// SessionStore persists sessions in redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a store over client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create claims the session token with SETNX. The redis key expires with the
// session, so stale entries clean themselves up.
func (s *SessionStore) Create(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sessionRecord{
		UserID:     sess.UserID,
		CreatedAt:  sess.CreatedAt,
		TTLSeconds: int64(sess.TTL / time.Second),
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+sess.Token, data, sess.TTL).Result()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return session.ErrTokenExists
	}
	return nil
}

// FindByToken loads the session for token.
func (s *SessionStore) FindByToken(ctx context.Context, token string) (*session.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: token %q", session.ErrNotFound, token)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session.Session{
		Token:     token,
		UserID:    rec.UserID,
		CreatedAt: rec.CreatedAt,
		TTL:       time.Duration(rec.TTLSeconds) * time.Second,
	}, nil
}

// DeleteExpired is a no-op: key TTLs already expire sessions server-side.
func (s *SessionStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
