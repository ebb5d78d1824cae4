package session

import "context"

// Store defines session persistence. Implementations must keep Create atomic
// per token: creating over an existing token returns ErrTokenExists instead
// of overwriting.
type Store interface {
	Create(ctx context.Context, sess *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	// DeleteExpired removes expired sessions and returns how many were
	// removed. Expiry is the only way a session ends, so this is pure
	// housekeeping: a swept session was already unresolvable.
	DeleteExpired(ctx context.Context) (int64, error)
}
