package render

import "errors"

var (
	// ErrRendererNotFound is returned when a renderer name is not registered.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a renderer name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)
