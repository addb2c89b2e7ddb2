package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

const sample = `
Link { text: "Docs"; url: "/docs"; }
Button { text: "OK"; width: "100"; height: "40"; color: "#007bff"; }
Alert { message: "Saved"; type: "success"; }
`

func TestOrchestrator_DefaultRenderers(t *testing.T) {
	orch := New()

	want := []string{"html", "json", "term", "yaml"}
	if diff := cmp.Diff(want, orch.Registry().List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}

	out, err := orch.Generate(context.Background(), Request{Source: sample})
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	if !strings.Contains(string(out), "<!DOCTYPE html>") || !strings.Contains(string(out), "OK") {
		t.Fatalf("expected html page, got %s", out)
	}

	out, err = orch.Generate(context.Background(), Request{Source: sample, Renderer: "json"})
	if err != nil {
		t.Fatalf("generate json: %v", err)
	}
	if !strings.Contains(string(out), `"kind": "Button"`) {
		t.Fatalf("expected json document, got %s", out)
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Source: sample, Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_AppliesDecoratorsToCopy(t *testing.T) {
	decorator := model.DecoratorFunc(func(doc *model.Document) error {
		for i := range doc.Nodes {
			if doc.Nodes[i].Computed == nil {
				doc.Nodes[i].Computed = map[string]any{}
			}
			doc.Nodes[i].Computed["decorated"] = true
		}
		return nil
	})

	c := compiler.New(compiler.WithCache(4))
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithCompiler(c),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithDecorators(decorator),
	)

	out, err := orch.Generate(context.Background(), Request{Source: sample})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "Button,Link,Alert" {
		t.Fatalf("unexpected renderer output: %s", out)
	}
	for _, node := range renderer.doc.Nodes {
		if node.Computed["decorated"] != true {
			t.Fatalf("decorator not applied to %s", node.Kind)
		}
	}

	for _, node := range c.Compile(sample).Nodes {
		if _, ok := node.Computed["decorated"]; ok {
			t.Fatalf("decorator leaked into compiler output for %s", node.Kind)
		}
	}
}

func TestOrchestrator_DecoratorErrors(t *testing.T) {
	boom := errors.New("boom")
	orch := New(WithDecorators(model.DecoratorFunc(func(*model.Document) error { return boom })))
	if _, err := orch.Compile(context.Background(), sample); !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestOrchestrator_CompileUsesInjectedCompiler(t *testing.T) {
	reg, err := grammar.Builtin().With(grammar.Entry{
		Kind:     "Rating",
		Fields:   []grammar.Field{{Name: "stars", Type: grammar.FieldInteger}},
		Identity: grammar.Identity{Field: "stars"},
	})
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	orch := New(WithCompiler(compiler.New(compiler.WithRegistry(reg), compiler.WithOrdering(compiler.OrderSource))))

	doc, err := orch.Compile(context.Background(), `Rating { stars: 4; } Label { text: "x"; width: "100"; height: "20"; }`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diff := cmp.Diff([]string{"Rating", "Label"}, doc.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if doc.Nodes[0].Attributes["stars"] != 4 {
		t.Fatalf("expected integer attribute, got %#v", doc.Nodes[0].Attributes["stars"])
	}
}

func TestOrchestrator_ContextHandling(t *testing.T) {
	orch := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Generate(ctx, Request{Source: sample}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	//nolint:staticcheck // nil context is rejected explicitly
	if _, err := orch.Compile(nil, sample); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

func TestOrchestrator_EmptySource(t *testing.T) {
	doc, err := New().Compile(context.Background(), "")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !doc.Empty() {
		t.Fatalf("expected empty document, got %d nodes", doc.Len())
	}
}
