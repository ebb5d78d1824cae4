package httpx

import (
	"bytes"
	"fmt"
	"io"
)

// headerField keeps one header as written. A slice of these, not a map,
// preserves insertion order on the wire.
type headerField struct {
	key   string
	value string
}

// Response is an outgoing response envelope. Headers appear on the wire in
// the order they were first set, each exactly once. Values are written
// verbatim: callers own their contents, nothing is escaped.
type Response struct {
	Status int
	Reason string

	headers []headerField
	body    []byte
}

// NewResponse creates an empty response with the given status line values.
func NewResponse(status int, reason string) *Response {
	return &Response{Status: status, Reason: reason}
}

// SetHeader sets a header, replacing the value in place when the key was
// already set so its wire position is kept.
func (r *Response) SetHeader(key, value string) *Response {
	for i := range r.headers {
		if r.headers[i].key == key {
			r.headers[i].value = value
			return r
		}
	}
	r.headers = append(r.headers, headerField{key: key, value: value})
	return r
}

// Header returns the value for key, or "" when unset.
func (r *Response) Header(key string) string {
	for _, h := range r.headers {
		if h.key == key {
			return h.value
		}
	}
	return ""
}

// Headers returns the headers as ordered key/value pairs.
func (r *Response) Headers() [][2]string {
	out := make([][2]string, len(r.headers))
	for i, h := range r.headers {
		out[i] = [2]string{h.key, h.value}
	}
	return out
}

// SetBody sets the response body.
func (r *Response) SetBody(body []byte) *Response {
	r.body = body
	return r
}

// Body returns the response body.
func (r *Response) Body() []byte {
	return r.body
}

// Encode frames the response: status line, headers in insertion order, blank
// line, body.
func (r *Response) Encode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %d %s\r\n", ProtoVersion, r.Status, r.Reason)
	for _, h := range r.headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.key, h.value)
	}
	buf.WriteString("\r\n")
	buf.Write(r.body)
	return buf.Bytes()
}

// WriteTo writes the framed response to w.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Encode())
	return int64(n), err
}

// HTML builds a success response carrying an HTML body.
func HTML(body string) *Response {
	return NewResponse(StatusOK, ReasonOK).
		SetHeader(HeaderContentType, ContentTypeHTML).
		SetBody([]byte(body))
}

// Redirect builds a redirect to url. Denied and post-login navigation both go
// through here; the reason phrase stays ReasonOK for client compatibility.
func Redirect(url string) *Response {
	return NewResponse(StatusFound, ReasonOK).
		SetHeader(HeaderLocation, url)
}

// NotFound builds the fixed response for unmatched routes.
func NotFound() *Response {
	return NewResponse(StatusNotFound, ReasonNotFound).
		SetBody([]byte("<h1>NOT FOUND</h1>"))
}
