package httpx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
)

// Request is a parsed incoming request. Header keys are canonicalized on
// parse; cookie, query and form maps keep the first value seen for a key.
type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers map[string]string
	Cookies map[string]string
	Query   map[string]string
	Form    map[string]string
	Body    []byte
}

// MaxBodyBytes caps the declared Content-Length a request may carry. The
// body buffer is allocated up front, so the declared size is bounded before
// any read happens.
const MaxBodyBytes = 4 << 20

// ReadRequest parses a single request from r: request line, headers, then an
// optional body sized by Content-Length. Form fields are decoded for POST
// requests only.
func ReadRequest(r *bufio.Reader) (*Request, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRequest, line)
	}

	req := &Request{
		Method:  parts[0],
		Proto:   parts[2],
		Headers: make(map[string]string),
	}

	req.Path, req.Query = splitTarget(parts[1])

	for {
		line, err := readLine(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
		}
		if line == "" {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		req.Headers[textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	req.Cookies = parseCookies(req.Headers[HeaderCookie])

	if cl := req.Headers[HeaderContentLength]; cl != "" {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 || n > MaxBodyBytes {
			return nil, fmt.Errorf("%w: content length %q", ErrMalformedHeader, cl)
		}
		req.Body = make([]byte, n)
		if _, err := io.ReadFull(r, req.Body); err != nil {
			return nil, errors.Join(ErrBodyIncomplete, err)
		}
	}

	if req.Method == MethodPost && len(req.Body) > 0 {
		req.Form = parseValues(string(req.Body))
	}

	return req, nil
}

// CookieValue returns the named cookie's value, or "" when absent.
func (r *Request) CookieValue(name string) string {
	return r.Cookies[name]
}

// QueryValue returns the named query parameter, or def when absent or empty.
func (r *Request) QueryValue(name, def string) string {
	if v, ok := r.Query[name]; ok && v != "" {
		return v
	}
	return def
}

// FormValue returns the named form field, or "" when absent.
func (r *Request) FormValue(name string) string {
	return r.Form[name]
}

// readLine reads one CRLF-terminated line, tolerating bare LF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func splitTarget(target string) (path string, query map[string]string) {
	path, rawQuery, _ := strings.Cut(target, "?")
	return path, parseValues(rawQuery)
}

// parseValues decodes urlencoded key=value pairs, keeping the first value per
// key. Undecodable pairs are dropped rather than failing the whole request.
func parseValues(raw string) map[string]string {
	values := make(map[string]string)
	parsed, _ := url.ParseQuery(raw)
	for key, vs := range parsed {
		if len(vs) > 0 {
			values[key] = vs[0]
		}
	}
	return values
}

// parseCookies splits a Cookie header into name/value pairs. Values are taken
// verbatim; the protocol sets no cookie attributes.
func parseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies
}
