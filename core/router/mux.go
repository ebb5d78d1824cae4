package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"picoweb/core/httpx"
)

// Mux is the route table. Register routes at startup, then only Dispatch;
// the table itself is immutable during serving.
type Mux struct {
	routes      map[string]HandlerFunc
	middlewares []Middleware
	notFound    HandlerFunc
	logger      *slog.Logger
}

// Option configures a Mux.
type Option func(*Mux)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mux) {
		m.logger = logger
	}
}

// WithNotFound replaces the default 404 handler.
func WithNotFound(h HandlerFunc) Option {
	return func(m *Mux) {
		m.notFound = h
	}
}

// New creates an empty route table.
func New(opts ...Option) *Mux {
	m := &Mux{
		routes: make(map[string]HandlerFunc),
		notFound: func(*Context) (*httpx.Response, error) {
			return httpx.NotFound(), nil
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Use appends global middleware, applied to every matched route in
// registration order, outside any per-route middleware.
func (m *Mux) Use(middlewares ...Middleware) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// Handle registers a handler for an exact path, optionally wrapped by
// per-route middleware. Registration problems are programmer errors and
// panic at startup.
func (m *Mux) Handle(path string, h HandlerFunc, middlewares ...Middleware) {
	if path == "" {
		panic(ErrEmptyPath)
	}
	if h == nil {
		panic(fmt.Errorf("%w: %s", ErrNilHandler, path))
	}
	if _, exists := m.routes[path]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateRoute, path))
	}
	m.routes[path] = chain(middlewares, h)
}

// Dispatch looks up the handler for the request path and runs it. Unmatched
// paths go to the not-found handler. Handler errors and panics are logged
// and returned; the caller must not write anything in that case.
func (m *Mux) Dispatch(ctx context.Context, req *httpx.Request) (resp *httpx.Response, err error) {
	start := time.Now()
	requestID := uuid.NewString()
	rctx := newContext(ctx, req)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
			resp = nil
			m.logger.ErrorContext(ctx, "panic while handling request",
				slog.String("request_id", requestID),
				slog.Any("value", p),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	h, matched := m.routes[req.Path]
	if !matched {
		h = m.notFound
	} else if len(m.middlewares) > 0 {
		h = chain(m.middlewares, h)
	}

	resp, err = h(rctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "request failed",
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Any("error", err),
		)
		return nil, err
	}
	if resp == nil {
		return nil, ErrNilResponse
	}

	m.logger.InfoContext(ctx, "request handled",
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.Status),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
