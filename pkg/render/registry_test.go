package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.Document, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("json"))
	reg.MustRegister(namedRenderer("html"))

	if diff := cmp.Diff([]string{"html", "json"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	got, err := reg.Get("json")
	if err != nil || got.Name() != "json" {
		t.Fatalf("get json: %v %v", got, err)
	}
	if !reg.Has("html") || reg.Has("term") {
		t.Fatalf("Has reported wrong membership")
	}
	if reg.MustGet("html").Name() != "html" {
		t.Fatalf("MustGet returned the wrong renderer")
	}
}

func TestRegistry_MustGetPanicsOnMissing(t *testing.T) {
	reg := render.NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic")
		}
	}()
	reg.MustGet("html")
}

func TestRegistry_Errors(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("json"))

	if err := reg.Register(namedRenderer("json")); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected ErrDuplicateRenderer, got %v", err)
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := reg.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected unnamed renderer to fail")
	}
	if _, err := reg.Get("pdf"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_SuggestsCloseNames(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("json"))
	reg.MustRegister(namedRenderer("yaml"))

	_, err := reg.Get("jsn")
	if err == nil || !strings.Contains(err.Error(), `did you mean "json"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	_, err = reg.Get("pdf")
	if err == nil || !strings.Contains(err.Error(), "available: json, yaml") {
		t.Fatalf("expected available list, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	tests := map[string]struct {
		name string
		want string
	}{
		"exact":    {name: "html", want: "html"},
		"case":     {name: "HTML", want: "html"},
		"one edit": {name: "trm", want: "term"},
		"too far":  {name: "markdown", want: ""},
		"empty":    {name: " ", want: ""},
	}
	candidates := []string{"html", "json", "term", "yaml"}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := render.Suggest(tc.name, candidates); got != tc.want {
				t.Fatalf("Suggest(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestCSSVars(t *testing.T) {
	vars := render.CSSVars(map[string]string{"brand": "#123", "--accent": "red", " ": "x"})
	want := map[string]string{"--brand": "#123", "--accent": "red"}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := render.CSSVarsStyle(vars); got != "--accent: red; --brand: #123" {
		t.Fatalf("unexpected style %q", got)
	}
	if render.CSSVars(nil) != nil || render.CSSVarsStyle(nil) != "" {
		t.Fatalf("empty input should produce empty output")
	}
}
