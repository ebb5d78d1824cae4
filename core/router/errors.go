package router

import "errors"

var (
	// ErrNilHandler is raised when registering a nil handler.
	ErrNilHandler = errors.New("nil handler")
	// ErrDuplicateRoute is raised when a path is registered twice.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrEmptyPath is raised when registering an empty path.
	ErrEmptyPath = errors.New("empty route path")
	// ErrNilResponse is returned when a handler produces neither a response
	// nor an error.
	ErrNilResponse = errors.New("nil response")
)
