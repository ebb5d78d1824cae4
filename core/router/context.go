package router

import (
	"context"

	"picoweb/core/httpx"
)

// Context carries one request through the middleware chain and handler. It
// implements context.Context so store calls can take it directly; values set
// with SetValue shadow the parent context.
type Context struct {
	context.Context

	req    *httpx.Request
	values map[any]any
}

func newContext(parent context.Context, req *httpx.Request) *Context {
	return &Context{
		Context: parent,
		req:     req,
	}
}

// Request returns the parsed request.
func (c *Context) Request() *httpx.Request {
	return c.req
}

// SetValue stores a request-scoped value, typically from middleware for the
// wrapped handler.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Value returns request-scoped values first, then falls through to the
// parent context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.Context.Value(key)
}
