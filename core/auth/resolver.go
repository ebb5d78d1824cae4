package auth

import (
	"context"
	"io"
	"log/slog"

	"picoweb/core/httpx"
	"picoweb/core/session"
)

// SessionCookie is the cookie the session token travels in.
const SessionCookie = "session_id"

// Resolver turns a request's session cookie into a User.
type Resolver struct {
	sessions *session.Manager
	users    Store
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the resolver's logger.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver over the session manager and user store.
func NewResolver(sessions *session.Manager, users Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		sessions: sessions,
		users:    users,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the request's identity. Every failure path — no cookie,
// unknown token, expired session, dangling user id — resolves to Guest.
// Resolve never errors and has no side effects.
func (r *Resolver) Resolve(ctx context.Context, req *httpx.Request) User {
	token := req.CookieValue(SessionCookie)
	if token == "" {
		return Guest()
	}

	sess, err := r.sessions.Find(ctx, token)
	if err != nil {
		return Guest()
	}

	u, err := r.users.FindByID(ctx, sess.UserID)
	if err != nil {
		// Session points at a user that no longer resolves. Fall back
		// rather than fail the request.
		r.logger.WarnContext(ctx, "session references unknown user",
			slog.Int64("user_id", sess.UserID),
		)
		return Guest()
	}
	return *u
}
