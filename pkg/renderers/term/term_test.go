package term

import (
	"context"
	"io"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

func TestRenderer_Outline(t *testing.T) {
	doc := compiler.New().Compile(`
Button { text: "OK"; width: "9000"; height: "40"; color: "#ff0000"; }
Alert { message: "Saved"; type: "success"; }
Navbar { title: "Site"; links: [Home/home, Docs/docs]; }
`)
	out, err := New(WithOutput(io.Discard), WithSpans(true)).Render(context.Background(), doc, render.RenderOptions{Title: "Demo"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"Demo (3 widgets)",
		"Button",
		"color:",
		"#ff0000",
		"500x40 (declared 9000x40, min 50x30, max 500x300)",
		"=color:",
		"#d4edda",
		"Home/home, Docs/docs",
		"@1-",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output\n%s", want, text)
		}
	}
	if strings.Index(text, "Button") > strings.Index(text, "Navbar") {
		t.Fatalf("expected document order\n%s", text)
	}
}

func TestRenderer_EmptyAndThemed(t *testing.T) {
	cfg := &theme.RendererConfig{Tokens: map[string]string{"primary": "#123456"}}
	out, err := New(WithOutput(io.Discard)).Render(context.Background(), model.Document{}, render.RenderOptions{Theme: cfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "no widgets") {
		t.Fatalf("expected empty marker, got %q", out)
	}
}

func TestShorten(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := shorten(long)
	if len([]rune(got)) != maxIdentityWidth || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected shortened identity %q", got)
	}
	if shorten("a \n  b") != "a b" {
		t.Fatalf("expected whitespace collapse")
	}
}

func TestRenderer_SkipsResolvedTemplate(t *testing.T) {
	doc := compiler.New().Compile(`Alert { message: "m"; type: "info"; }`)
	if err := widgets.NewRegistry().Decorate(&doc); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	out, err := New(WithOutput(io.Discard)).Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "="+widgets.TemplateKey) {
		t.Fatalf("unexpected template line\n%s", out)
	}
	if !strings.Contains(string(out), "=color:") {
		t.Fatalf("expected computed color\n%s", out)
	}
}
