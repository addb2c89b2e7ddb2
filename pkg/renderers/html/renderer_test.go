package html

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

func renderSource(t *testing.T, r *Renderer, source string, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(context.Background(), compiler.New().Compile(source), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_Metadata(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "html" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderer_ResizableButton(t *testing.T) {
	out := renderSource(t, newRenderer(t), `Button { text: "OK"; width: "100"; height: "40"; color: "#ff0000"; }`, render.RenderOptions{Title: "Demo"})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Demo</title>",
		`class="wd-resizable"`,
		`data-width="100"`,
		`data-height="40"`,
		`data-min-width="50"`,
		`data-min-height="30"`,
		`data-max-width="500"`,
		`data-max-height="300"`,
		"<button",
		">OK</button>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestRenderer_ClampsDeclaredSize(t *testing.T) {
	out := renderSource(t, newRenderer(t), `Label { text: "Big"; width: "9000"; height: "1"; }`, render.RenderOptions{})
	if !strings.Contains(out, `data-width="500"`) || !strings.Contains(out, `data-height="30"`) {
		t.Fatalf("expected clamped frame size\n%s", out)
	}
}

func TestRenderer_EscapesAndSanitizes(t *testing.T) {
	src := `
Label { text: "<script>alert(1)</script>"; width: "100"; height: "40"; }
Link { text: "Docs"; url: "javascript:alert(1)"; }
Link { text: "Home"; url: "https://example.com/home"; }
`
	out := renderSource(t, newRenderer(t), src, render.RenderOptions{Fragment: true})

	if strings.Contains(out, "<script") {
		t.Fatalf("script element leaked into output\n%s", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("javascript URL survived sanitizing\n%s", out)
	}
	for _, want := range []string{">Docs</a>", `href="https://example.com/home"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output\n%s", want, out)
		}
	}
}

func TestRenderer_WithoutSanitizeKeepsMarkupVerbatim(t *testing.T) {
	out := renderSource(t, newRenderer(t, WithSanitize(false)), `Link { text: "Docs"; url: "javascript:alert(1)"; }`, render.RenderOptions{Fragment: true})
	if !strings.Contains(out, "javascript:alert(1)") {
		t.Fatalf("expected unsanitized href\n%s", out)
	}
}

func TestRenderer_Fragment(t *testing.T) {
	out := renderSource(t, newRenderer(t), `Footer { text: "bye"; }`, render.RenderOptions{Fragment: true})
	if strings.Contains(out, "<!DOCTYPE") || strings.Contains(out, "<html") {
		t.Fatalf("fragment should not contain page chrome\n%s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "<main") || !strings.Contains(out, ">bye</footer>") {
		t.Fatalf("unexpected fragment\n%s", out)
	}
}

func TestRenderer_EmptyDocument(t *testing.T) {
	out := renderSource(t, newRenderer(t), "", render.RenderOptions{})
	if !strings.Contains(out, `<main class="wd-document">`) || strings.Contains(out, "wd-widget") {
		t.Fatalf("expected empty page\n%s", out)
	}
}

func TestRenderer_OrderFollowsDocument(t *testing.T) {
	src := `Link { text: "Second"; url: "/b"; } Button { text: "First"; width: "80"; height: "30"; color: "blue"; }`
	out := renderSource(t, newRenderer(t), src, render.RenderOptions{Fragment: true})
	first, second := strings.Index(out, "First"), strings.Index(out, "Second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected grouped order Button then Link\n%s", out)
	}
}

func TestRenderer_ThemeTokensAndPartials(t *testing.T) {
	overrides := fstest.MapFS{
		"acme/button.tpl": {Data: []byte(`<span class="acme-button">{{ attrs.text }}</span>`)},
	}
	r := newRenderer(t, WithTemplatesFS(overrides))
	cfg := &theme.RendererConfig{
		Theme:    "acme",
		Variant:  "dark",
		Tokens:   map[string]string{"primary": "#123456"},
		Partials: map[string]string{"widgets.button": "acme/button"},
	}

	src := `Button { text: "OK"; width: "100"; height: "40"; color: "red"; } Pagination { pages: 2; active: 1; }`
	out := renderSource(t, r, src, render.RenderOptions{Theme: cfg})

	if !strings.Contains(out, "--primary: #123456") {
		t.Fatalf("expected theme custom properties on the page root\n%s", out)
	}
	if !strings.Contains(out, `class="acme-button"`) {
		t.Fatalf("expected themed button partial\n%s", out)
	}
	if !strings.Contains(out, "#123456") || strings.Count(out, `aria-current="page"`) != 1 {
		t.Fatalf("expected themed active page\n%s", out)
	}
}

func TestRenderer_CustomKindUsesGenericTemplate(t *testing.T) {
	doc := model.Document{Nodes: []model.WidgetNode{{
		Kind:       "Rating",
		Identity:   "Food",
		Attributes: model.Attributes{"label": "Food", "stars": 4},
	}}}
	out, err := newRenderer(t).Render(context.Background(), doc, render.RenderOptions{Fragment: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"wd-generic", "<dt>stars</dt>", "<dd>4</dd>", "<dd>Food</dd>"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in output\n%s", want, out)
		}
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := compiler.New().Compile(`Footer { text: "bye"; }`)
	if _, err := newRenderer(t).Render(ctx, doc, render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
