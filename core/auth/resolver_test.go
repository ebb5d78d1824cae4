package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoweb/core/auth"
	"picoweb/core/httpx"
	"picoweb/core/session"
	"picoweb/storage/memory"
)

type fixture struct {
	users    *memory.UserStore
	sessions *memory.SessionStore
	manager  *session.Manager
	resolver *auth.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	manager, err := session.NewManager(sessions, time.Hour)
	require.NoError(t, err)

	return &fixture{
		users:    users,
		sessions: sessions,
		manager:  manager,
		resolver: auth.NewResolver(manager, users),
	}
}

func (f *fixture) addUser(t *testing.T, username string, role auth.Role) *auth.User {
	t.Helper()
	u := &auth.User{Username: username, Password: "secret", Role: role}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func withCookie(token string) *httpx.Request {
	return &httpx.Request{
		Method:  httpx.MethodGet,
		Path:    "/",
		Cookies: map[string]string{auth.SessionCookie: token},
	}
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no cookie resolves to guest", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		u := f.resolver.Resolve(ctx, &httpx.Request{Method: httpx.MethodGet, Path: "/"})
		assert.True(t, u.IsGuest())
		assert.Equal(t, auth.GuestUsername, u.Username)
	})

	t.Run("empty cookie resolves to guest", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		assert.True(t, f.resolver.Resolve(ctx, withCookie("")).IsGuest())
	})

	t.Run("unknown token resolves to guest", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		assert.True(t, f.resolver.Resolve(ctx, withCookie("nosuchtoken")).IsGuest())
	})

	t.Run("expired session resolves to guest", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		u := f.addUser(t, "gua", auth.RoleUser)
		stale := &session.Session{Token: "staletoken", UserID: u.ID, CreatedAt: time.Now().Add(-2 * time.Hour), TTL: time.Hour}
		require.NoError(t, f.sessions.Create(ctx, stale))

		assert.True(t, f.resolver.Resolve(ctx, withCookie("staletoken")).IsGuest())
	})

	t.Run("dangling user reference resolves to guest", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		orphan := &session.Session{Token: "orphantoken", UserID: 999, CreatedAt: time.Now(), TTL: time.Hour}
		require.NoError(t, f.sessions.Create(ctx, orphan))

		assert.True(t, f.resolver.Resolve(ctx, withCookie("orphantoken")).IsGuest())
	})

	t.Run("live session resolves to its user", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		u := f.addUser(t, "gua", auth.RoleAdmin)
		sess, err := f.manager.Start(ctx, u.ID)
		require.NoError(t, err)

		got := f.resolver.Resolve(ctx, withCookie(sess.Token))
		assert.False(t, got.IsGuest())
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "gua", got.Username)
		assert.True(t, got.IsAdmin())
	})
}

func TestGuest(t *testing.T) {
	t.Parallel()

	g := auth.Guest()
	assert.True(t, g.IsGuest())
	assert.False(t, g.IsAdmin())
	assert.Zero(t, g.ID)
	assert.Equal(t, auth.RoleUser, g.Role)
}
