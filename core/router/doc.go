// Package router dispatches parsed requests to handlers through an
// exact-match route table.
//
// The table is built once at startup and never mutated afterwards: paths
// match literally, with no patterns and no trailing-slash normalization, and
// anything unmatched gets the fixed 404 response. Handlers return a response
// or an error; an error terminates the request with no partial response.
//
//	mux := router.New(router.WithLogger(log))
//	mux.Handle("/", index)
//	mux.Handle("/admin/users", listUsers, auth.RequireAdmin(resolver))
//
//	resp, err := mux.Dispatch(ctx, req)
//
// Middleware wraps handlers either per route (Handle's variadic arguments) or
// globally (Use), outermost first, in the order given.
package router
