package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"picoweb/core/session"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

// SessionStore persists sessions in postgres.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a store over pool.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// Create inserts the session. The token primary key turns a collision into
// session.ErrTokenExists without touching the existing row.
func (s *SessionStore) Create(ctx context.Context, sess *session.Session) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, created_at, ttl_seconds) VALUES ($1, $2, $3, $4)`,
		sess.Token, sess.UserID, sess.CreatedAt, int64(sess.TTL/time.Second),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return session.ErrTokenExists
	}
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// FindByToken loads the session for token.
func (s *SessionStore) FindByToken(ctx context.Context, token string) (*session.Session, error) {
	sess := &session.Session{Token: token}
	var ttlSeconds int64
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, created_at, ttl_seconds FROM sessions WHERE token = $1`,
		token,
	).Scan(&sess.UserID, &sess.CreatedAt, &ttlSeconds)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: token %q", session.ErrNotFound, token)
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	sess.TTL = time.Duration(ttlSeconds) * time.Second
	return sess, nil
}

// DeleteExpired removes sessions whose window has passed.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE created_at + ttl_seconds * INTERVAL '1 second' < now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
