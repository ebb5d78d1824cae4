package router

import "picoweb/core/httpx"

// HandlerFunc handles one request. Returning an error terminates the request
// without a response being written.
type HandlerFunc func(ctx *Context) (*httpx.Response, error)

// Middleware wraps a handler to add a cross-cutting precondition or behavior.
type Middleware func(next HandlerFunc) HandlerFunc

// chain wraps h with middlewares so the first one runs outermost.
func chain(middlewares []Middleware, h HandlerFunc) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
