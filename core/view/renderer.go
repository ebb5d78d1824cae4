package view

import (
	"context"
	"strings"
)

// Substitution binds one placeholder name to its replacement value.
type Substitution struct {
	Placeholder string
	Value       string
}

// Renderer renders named templates through a Loader.
type Renderer struct {
	loader Loader
}

// NewRenderer creates a renderer over the given loader.
func NewRenderer(loader Loader) (*Renderer, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	return &Renderer{loader: loader}, nil
}

// Render loads the named template and applies each substitution in order.
// Every occurrence of "{{placeholder}}" is replaced; placeholders with no
// substitution are left verbatim. A substituted value is itself subject to
// later substitutions, so order matters to callers.
func (r *Renderer) Render(ctx context.Context, name string, subs ...Substitution) (string, error) {
	text, err := r.loader.Load(ctx, name)
	if err != nil {
		return "", err
	}
	for _, sub := range subs {
		text = strings.ReplaceAll(text, "{{"+sub.Placeholder+"}}", sub.Value)
	}
	return text, nil
}
