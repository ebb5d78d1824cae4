// Package auth resolves request identity and gates routes by role.
//
// The Resolver turns the session_id cookie into a User: absent cookie,
// unknown token, expired session or a dangling user reference all fall back
// to the guest sentinel. Resolution has no side effects and never fails.
//
// Gates are router middleware enforcing a precondition before the wrapped
// handler runs:
//
//	mux.Handle("/admin/users", listUsers, auth.RequireAdmin(resolver))
//
// A failed precondition always answers with a redirect to /login, never an
// error status. On success the resolved user is stored on the request
// context and available through CurrentUser.
package auth
