package web

import (
	"errors"
	"log/slog"

	"picoweb/core/auth"
	"picoweb/core/httpx"
	"picoweb/core/router"
	"picoweb/core/view"
)

// loginFailedMessage is rendered inline on bad credentials.
const loginFailedMessage = "wrong username or password"

// Login renders the login form on GET and processes credentials on POST.
// A successful login answers with a redirect carrying the session cookie;
// a failed one re-renders the form with an inline error and sets nothing.
func (h *Handlers) Login(ctx *router.Context) (*httpx.Response, error) {
	req := ctx.Request()
	u := h.resolver.Resolve(ctx, req)

	h.logger.DebugContext(ctx, "login page requested",
		slog.Any("headers", req.Headers),
		slog.Any("cookies", req.Cookies),
	)

	result := ""
	if req.Method == httpx.MethodPost {
		target, err := h.users.FindByCredentials(ctx, req.FormValue("username"), req.FormValue("password"))
		switch {
		case err == nil:
			sess, err := h.sessions.Start(ctx, target.ID)
			if err != nil {
				return nil, err
			}
			// Set-Cookie goes on the wire before Location, and the cookie
			// carries no attributes. Both are part of the client contract.
			resp := httpx.NewResponse(httpx.StatusFound, httpx.ReasonOK)
			resp.SetHeader(httpx.HeaderContentType, httpx.ContentTypeHTML)
			resp.SetHeader(httpx.HeaderSetCookie, auth.SessionCookie+"="+sess.Token)
			resp.SetHeader(httpx.HeaderLocation, "/")
			return resp, nil
		case errors.Is(err, auth.ErrUserNotFound):
			result = loginFailedMessage
		default:
			return nil, err
		}
	}

	body, err := h.renderer.Render(ctx, templateLogin,
		view.Substitution{Placeholder: "result", Value: result},
		view.Substitution{Placeholder: "username", Value: u.Username},
	)
	if err != nil {
		return nil, err
	}
	return httpx.HTML(body), nil
}
