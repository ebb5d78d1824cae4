package httpx

import "errors"

var (
	// ErrMalformedRequest is returned when the request line cannot be parsed.
	ErrMalformedRequest = errors.New("malformed request line")
	// ErrMalformedHeader is returned when a header line has no separator.
	ErrMalformedHeader = errors.New("malformed header line")
	// ErrBodyIncomplete is returned when the body is shorter than the
	// declared Content-Length.
	ErrBodyIncomplete = errors.New("request body shorter than content length")
)
