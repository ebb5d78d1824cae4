package web

import (
	"fmt"
	"io/fs"

	"picoweb/core/httpx"
	"picoweb/core/router"
)

// defaultAsset is served when the file query parameter is absent or empty.
const defaultAsset = "doge.gif"

// Static serves one asset named by the "file" query parameter. The content
// type is always image/gif regardless of the file — clients depend on that
// header as-is. A missing asset is fatal for the request: the error
// propagates and no partial response is written.
func (h *Handlers) Static(ctx *router.Context) (*httpx.Response, error) {
	name := ctx.Request().QueryValue("file", defaultAsset)

	// Containment check: the asset root is the only reachable directory.
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid asset path %q: %w", name, fs.ErrNotExist)
	}

	data, err := fs.ReadFile(h.assets, name)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}

	resp := httpx.NewResponse(httpx.StatusOK, httpx.ReasonOK)
	resp.SetHeader(httpx.HeaderContentType, httpx.ContentTypeGIF)
	resp.SetBody(data)
	return resp, nil
}
