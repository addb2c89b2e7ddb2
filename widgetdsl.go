// Package widgetdsl compiles a small declarative widget DSL into an ordered
// document of widget nodes and renders it through pluggable renderers.
//
// Quick start:
//
//	doc := widgetdsl.Compile(`Button { text: "OK"; width: "100"; height: "40"; color: "#007bff"; }`)
//	html, err := widgetdsl.Generate(ctx, source, "html")
package widgetdsl

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/orchestrator"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

// Document is the compiled, ordered node list.
type Document = model.Document

// WidgetNode is one compiled widget declaration.
type WidgetNode = model.WidgetNode

// RenderOptions describes per-request overrides that renderers can use.
type RenderOptions = render.RenderOptions

// Compile compiles source against the builtin grammar with kind-grouped
// ordering. It never fails: malformed declarations are skipped.
func Compile(source string) Document {
	return compiler.Compile(source)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate compiles source and renders it with the named renderer (html,
// json, yaml or term by default). An empty name uses the default renderer.
func Generate(ctx context.Context, source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme and variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers manifests behind a selector with the given
// defaults.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (orchestrator.Option, error) {
	selector, err := orchestrator.NewManifestSelector(defaultTheme, defaultVariant, manifests...)
	if err != nil {
		return nil, err
	}
	return orchestrator.WithThemeSelector(selector), nil
}
