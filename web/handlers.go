package web

import (
	"io/fs"
	"log/slog"

	"picoweb/core/auth"
	"picoweb/core/session"
	"picoweb/core/view"
)

// Template names the handlers render.
const (
	templateIndex      = "index.html"
	templateLogin      = "login.html"
	templateRegister   = "register.html"
	templateAdminUsers = "admin_users.html"
)

// minCredentialLength is the registration rule: both username and password
// must be longer than two characters.
const minCredentialLength = 2

// Handlers carries the collaborators every page handler needs.
type Handlers struct {
	users    auth.Store
	sessions *session.Manager
	resolver *auth.Resolver
	renderer *view.Renderer
	assets   fs.FS
	logger   *slog.Logger
}

// HandlersOption configures Handlers.
type HandlersOption func(*Handlers)

// WithLogger sets the handlers' logger.
func WithLogger(logger *slog.Logger) HandlersOption {
	return func(h *Handlers) {
		h.logger = logger
	}
}

// NewHandlers wires the page handlers together. assets is the static asset
// root served by /static.
func NewHandlers(
	users auth.Store,
	sessions *session.Manager,
	resolver *auth.Resolver,
	renderer *view.Renderer,
	assets fs.FS,
	opts ...HandlersOption,
) *Handlers {
	h := &Handlers{
		users:    users,
		sessions: sessions,
		resolver: resolver,
		renderer: renderer,
		assets:   assets,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
