package auth

import (
	"picoweb/core/httpx"
	"picoweb/core/router"
)

// loginPath is where denied requests are sent.
const loginPath = "/login"

// userKey keys the resolved user on the request context.
type userKey struct{}

// CurrentUser returns the identity a gate resolved for this request, or
// Guest when no gate ran.
func CurrentUser(ctx *router.Context) User {
	if u, ok := ctx.Value(userKey{}).(User); ok {
		return u
	}
	return Guest()
}

// RequireUser wraps a handler with an authentication precondition: guests
// are redirected to the login page, everyone else passes through with their
// identity on the context. The wrapped handler's own response is untouched.
func RequireUser(resolver *Resolver) router.Middleware {
	return gate(resolver, func(u User) bool { return !u.IsGuest() })
}

// RequireAdmin wraps a handler with an admin precondition. Non-admins,
// guests included, are redirected to the login page.
func RequireAdmin(resolver *Resolver) router.Middleware {
	return gate(resolver, User.IsAdmin)
}

// gate builds the common precondition wrapper. Denial is always a redirect,
// never an error status.
func gate(resolver *Resolver, allowed func(User) bool) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx *router.Context) (*httpx.Response, error) {
			u := resolver.Resolve(ctx, ctx.Request())
			if !allowed(u) {
				return httpx.Redirect(loginPath), nil
			}
			ctx.SetValue(userKey{}, u)
			return next(ctx)
		}
	}
}
