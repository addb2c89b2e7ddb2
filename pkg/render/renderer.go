package render

import (
	"context"

	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// Renderer converts a compiled document into a byte representation (HTML,
// JSON, terminal text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.Document, options RenderOptions) ([]byte, error)
}
