package web

import (
	"picoweb/core/auth"
	"picoweb/core/router"
)

// Routes builds the route table. Paths match exactly; anything else gets the
// fixed 404.
func (h *Handlers) Routes(opts ...router.Option) *router.Mux {
	m := router.New(opts...)

	m.Handle("/", h.Index)
	m.Handle("/login", h.Login)
	m.Handle("/register", h.Register)
	m.Handle("/admin/users", h.AdminUsers, auth.RequireAdmin(h.resolver))
	m.Handle("/admin/users/update", h.AdminUsersUpdate, auth.RequireAdmin(h.resolver))
	m.Handle("/static", h.Static)

	return m
}
