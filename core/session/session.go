package session

import "time"

// Session binds a token to a user for a bounded time window.
type Session struct {
	// Token is the opaque identifier stored in the session_id cookie.
	Token string

	// UserID references an existing user at creation time.
	UserID int64

	CreatedAt time.Time
	TTL       time.Duration
}

// ExpiresAt returns the instant the session stops resolving.
func (s Session) ExpiresAt() time.Time {
	return s.CreatedAt.Add(s.TTL)
}

// IsExpired reports whether the session has outlived its TTL. The window is
// inclusive: a session is live until strictly more than TTL has elapsed.
func (s Session) IsExpired() bool {
	return time.Since(s.CreatedAt) > s.TTL
}
