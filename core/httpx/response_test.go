package httpx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoweb/core/httpx"
)

func TestResponseEncode(t *testing.T) {
	t.Parallel()

	t.Run("frames status line headers and body", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NewResponse(httpx.StatusOK, httpx.ReasonOK).
			SetHeader(httpx.HeaderContentType, httpx.ContentTypeHTML).
			SetBody([]byte("<h1>hi</h1>"))

		want := "HTTP/1.x 233 SUPER OK\r\nContent-Type: text/html\r\n\r\n<h1>hi</h1>"
		assert.Equal(t, want, string(resp.Encode()))
	})

	t.Run("preserves header insertion order", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NewResponse(httpx.StatusFound, httpx.ReasonOK).
			SetHeader(httpx.HeaderContentType, httpx.ContentTypeHTML).
			SetHeader(httpx.HeaderSetCookie, "session_id=abc").
			SetHeader(httpx.HeaderLocation, "/")

		encoded := string(resp.Encode())
		cookieAt := bytes.Index([]byte(encoded), []byte("Set-Cookie"))
		locationAt := bytes.Index([]byte(encoded), []byte("Location"))
		require.GreaterOrEqual(t, cookieAt, 0)
		require.GreaterOrEqual(t, locationAt, 0)
		assert.Less(t, cookieAt, locationAt)
	})

	t.Run("replacing a header keeps its position and writes it once", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NewResponse(httpx.StatusOK, httpx.ReasonOK).
			SetHeader(httpx.HeaderContentType, "text/plain").
			SetHeader(httpx.HeaderLocation, "/somewhere").
			SetHeader(httpx.HeaderContentType, httpx.ContentTypeHTML)

		encoded := string(resp.Encode())
		assert.Equal(t, 1, bytes.Count([]byte(encoded), []byte("Content-Type")))
		assert.Contains(t, encoded, "Content-Type: text/html\r\nLocation: /somewhere\r\n")
	})

	t.Run("header values are written verbatim", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NewResponse(httpx.StatusOK, httpx.ReasonOK).
			SetHeader(httpx.HeaderSetCookie, "session_id=a b;c")

		assert.Contains(t, string(resp.Encode()), "Set-Cookie: session_id=a b;c\r\n")
	})

	t.Run("writes blank line with no headers", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NewResponse(httpx.StatusNotFound, httpx.ReasonNotFound)
		assert.Equal(t, "HTTP/1.x 404 NOT FOUND\r\n\r\n", string(resp.Encode()))
	})
}

func TestResponseConstructors(t *testing.T) {
	t.Parallel()

	t.Run("HTML uses the non-standard success status", func(t *testing.T) {
		t.Parallel()

		resp := httpx.HTML("<p>ok</p>")
		assert.Equal(t, httpx.StatusOK, resp.Status)
		assert.Equal(t, httpx.ReasonOK, resp.Reason)
		assert.Equal(t, httpx.ContentTypeHTML, resp.Header(httpx.HeaderContentType))
		assert.Equal(t, "<p>ok</p>", string(resp.Body()))
	})

	t.Run("Redirect carries Location", func(t *testing.T) {
		t.Parallel()

		resp := httpx.Redirect("/login")
		assert.Equal(t, httpx.StatusFound, resp.Status)
		assert.Equal(t, "/login", resp.Header(httpx.HeaderLocation))
	})

	t.Run("NotFound has the fixed body", func(t *testing.T) {
		t.Parallel()

		resp := httpx.NotFound()
		assert.Equal(t, httpx.StatusNotFound, resp.Status)
		assert.Equal(t, "<h1>NOT FOUND</h1>", string(resp.Body()))
	})
}
