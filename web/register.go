package web

import (
	"fmt"
	"strings"

	"picoweb/core/auth"
	"picoweb/core/httpx"
	"picoweb/core/router"
	"picoweb/core/view"
)

// validationFailedMessage is rendered inline when registration input is too
// short.
const validationFailedMessage = "username and password must be longer than 2 characters"

// Register renders the registration form on GET and creates an account on
// POST. The success page includes a listing of every account — a known leak
// kept for compatibility with the existing pages; see DESIGN.md before
// changing.
func (h *Handlers) Register(ctx *router.Context) (*httpx.Response, error) {
	req := ctx.Request()

	result := ""
	if req.Method == httpx.MethodPost {
		username := req.FormValue("username")
		password := req.FormValue("password")

		if len(username) > minCredentialLength && len(password) > minCredentialLength {
			u := &auth.User{Username: username, Password: password, Role: auth.RoleUser}
			if err := h.users.Create(ctx, u); err != nil {
				return nil, err
			}

			all, err := h.users.All(ctx)
			if err != nil {
				return nil, err
			}
			result = "registration successful<br> <pre>" + formatUsers(all) + "</pre>"
		} else {
			result = validationFailedMessage
		}
	}

	body, err := h.renderer.Render(ctx, templateRegister,
		view.Substitution{Placeholder: "result", Value: result},
	)
	if err != nil {
		return nil, err
	}
	return httpx.HTML(body), nil
}

func formatUsers(users []auth.User) string {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = fmt.Sprintf("%d %s %s %s", u.ID, u.Username, u.Password, u.Role)
	}
	return strings.Join(lines, "\n")
}
