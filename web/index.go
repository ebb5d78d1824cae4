package web

import (
	"picoweb/core/httpx"
	"picoweb/core/router"
	"picoweb/core/view"
)

// Index renders the public landing page, greeting guest and authenticated
// visitors alike.
func (h *Handlers) Index(ctx *router.Context) (*httpx.Response, error) {
	u := h.resolver.Resolve(ctx, ctx.Request())

	body, err := h.renderer.Render(ctx, templateIndex,
		view.Substitution{Placeholder: "username", Value: u.Username},
	)
	if err != nil {
		return nil, err
	}
	return httpx.HTML(body), nil
}
