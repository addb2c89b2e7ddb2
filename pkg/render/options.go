package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the compiled document.
type RenderOptions struct {
	// Title is used by renderers that produce a full page or a framed view.
	Title string
	// Fragment asks page renderers to emit only the widget markup without the
	// surrounding document chrome.
	Fragment bool
	// Theme carries the resolved theme selection. Renderers read Tokens and
	// CSSVars for styling and Partials for template overrides. Nil means the
	// renderer defaults apply.
	Theme *theme.RendererConfig
}
