package view

import "errors"

var (
	// ErrTemplateNotFound is returned when the loader has no template by the
	// requested name. Request handling must treat this as fatal.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrNilLoader is returned by NewRenderer when no loader is given.
	ErrNilLoader = errors.New("nil template loader")
)
