package view

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Loader resolves a template name to its raw text.
type Loader interface {
	Load(ctx context.Context, name string) (string, error)
}

// FSLoader loads templates from a file system, typically os.DirFS over the
// template directory.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load reads the named template. Invalid names and missing files both report
// ErrTemplateNotFound.
func (l *FSLoader) Load(_ context.Context, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("load template %q: %w", name, err)
	}
	return string(data), nil
}

// MapLoader serves templates from an in-memory map. Useful in tests and for
// embedded defaults.
type MapLoader map[string]string

// Load returns the named entry or ErrTemplateNotFound.
func (l MapLoader) Load(_ context.Context, name string) (string, error) {
	text, ok := l[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return text, nil
}
