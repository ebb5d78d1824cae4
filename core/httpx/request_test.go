package httpx_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoweb/core/httpx"
)

func parse(t *testing.T, raw string) *httpx.Request {
	t.Helper()
	req, err := httpx.ReadRequest(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)
	return req
}

func TestReadRequest(t *testing.T) {
	t.Parallel()

	t.Run("parses request line and headers", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET /login HTTP/1.1\r\nHost: example.test\r\nAccept: */*\r\n\r\n")

		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "/login", req.Path)
		assert.Equal(t, "HTTP/1.1", req.Proto)
		assert.Equal(t, "example.test", req.Headers["Host"])
		assert.Equal(t, "*/*", req.Headers["Accept"])
	})

	t.Run("splits query parameters from path", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET /static?file=doge.gif&x=1 HTTP/1.1\r\n\r\n")

		assert.Equal(t, "/static", req.Path)
		assert.Equal(t, "doge.gif", req.QueryValue("file", "fallback"))
		assert.Equal(t, "1", req.Query["x"])
	})

	t.Run("query default applies when parameter absent or empty", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET /static?file= HTTP/1.1\r\n\r\n")

		assert.Equal(t, "fallback", req.QueryValue("file", "fallback"))
		assert.Equal(t, "fallback", req.QueryValue("missing", "fallback"))
	})

	t.Run("parses cookies", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET / HTTP/1.1\r\nCookie: session_id=abc123; theme=dark\r\n\r\n")

		assert.Equal(t, "abc123", req.CookieValue("session_id"))
		assert.Equal(t, "dark", req.CookieValue("theme"))
		assert.Equal(t, "", req.CookieValue("missing"))
	})

	t.Run("canonicalizes header keys", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET / HTTP/1.1\r\ncontent-type: text/html\r\n\r\n")

		assert.Equal(t, "text/html", req.Headers["Content-Type"])
	})

	t.Run("reads body and form for POST", func(t *testing.T) {
		t.Parallel()

		body := "username=gua&password=123456"
		raw := "POST /login HTTP/1.1\r\nContent-Length: " +
			"28\r\nContent-Type: application/x-www-form-urlencoded\r\n\r\n" + body

		req := parse(t, raw)

		assert.Equal(t, []byte(body), req.Body)
		assert.Equal(t, "gua", req.FormValue("username"))
		assert.Equal(t, "123456", req.FormValue("password"))
	})

	t.Run("does not decode form for GET", func(t *testing.T) {
		t.Parallel()

		req := parse(t, "GET /login HTTP/1.1\r\nContent-Length: 5\r\n\r\na=b&c")

		assert.Empty(t, req.Form)
	})

	t.Run("rejects malformed request line", func(t *testing.T) {
		t.Parallel()

		_, err := httpx.ReadRequest(bufio.NewReader(strings.NewReader("GET /\r\n\r\n")))
		require.ErrorIs(t, err, httpx.ErrMalformedRequest)
	})

	t.Run("rejects header without separator", func(t *testing.T) {
		t.Parallel()

		_, err := httpx.ReadRequest(bufio.NewReader(strings.NewReader("GET / HTTP/1.1\r\nbogus\r\n\r\n")))
		require.ErrorIs(t, err, httpx.ErrMalformedHeader)
	})

	t.Run("rejects content length above the body cap", func(t *testing.T) {
		t.Parallel()

		_, err := httpx.ReadRequest(bufio.NewReader(strings.NewReader("POST / HTTP/1.1\r\nContent-Length: 9999999999\r\n\r\n")))
		require.ErrorIs(t, err, httpx.ErrMalformedHeader)
	})

	t.Run("rejects truncated body", func(t *testing.T) {
		t.Parallel()

		_, err := httpx.ReadRequest(bufio.NewReader(strings.NewReader("POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc")))
		require.ErrorIs(t, err, httpx.ErrBodyIncomplete)
	})
}
