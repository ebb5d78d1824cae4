// Package view renders page templates by literal placeholder substitution.
//
// A template is plain text with {{name}} markers. Rendering applies each
// supplied substitution in order over the progressively modified text;
// markers without a substitution stay in the output verbatim. There is no
// escaping and no expression language, which is exactly the contract the
// existing templates rely on — html/template would reject or rewrite them.
//
//	renderer := view.NewRenderer(view.NewFSLoader(os.DirFS("web/templates")))
//	page, err := renderer.Render(ctx, "index.html",
//		view.Substitution{Placeholder: "username", Value: user.Username},
//	)
//
// A missing template is fatal for the request: Render returns an error
// wrapping ErrTemplateNotFound and the caller must not emit a partial page.
package view
