// Package web holds the site's page handlers and route table: the public
// index, login and registration, the admin user-management pages, and static
// asset serving.
//
// Handlers are methods on Handlers, which bundles the user store, session
// manager, identity resolver, template renderer and static asset file
// system. Routes builds the immutable route table over them.
package web
