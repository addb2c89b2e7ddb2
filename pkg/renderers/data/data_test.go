package data

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/testsupport"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

func compileSample(t *testing.T) model.Document {
	t.Helper()
	src := testsupport.MustReadSource(t, filepath.Join("testdata", "sample.dsl"))
	return compiler.New().Compile(src)
}

func TestJSONRenderer_Golden(t *testing.T) {
	out, err := NewJSON().Render(testsupport.Context(), compileSample(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "sample.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}
	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareJSON(want, out); diff != "" {
		t.Fatalf("json output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRenderer_Compact(t *testing.T) {
	doc := compiler.New().Compile(`Footer { text: "<b>"; }`)
	out, err := NewJSON(WithIndent("")).Render(testsupport.Context(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	if strings.Count(text, "\n") != 1 {
		t.Fatalf("expected single-line output, got %q", text)
	}
	if !strings.Contains(text, `"text":"<b>"`) {
		t.Fatalf("expected unescaped HTML characters, got %q", text)
	}
}

func TestYAMLRenderer_MatchesJSONContract(t *testing.T) {
	out, err := NewYAML().Render(testsupport.Context(), compileSample(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml output does not parse: %v\n%s", err, out)
	}
	asJSON, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("re-encode yaml: %v", err)
	}

	want := testsupport.MustReadGolden(t, filepath.Join("testdata", "sample.golden.json"))
	if diff := testsupport.CompareJSON(want, asJSON); diff != "" {
		t.Fatalf("yaml output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderers_EmptyDocument(t *testing.T) {
	ctx := testsupport.Context()
	jsonOut, err := NewJSON(WithIndent("")).Render(ctx, model.Document{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("json render: %v", err)
	}
	if got := strings.TrimSpace(string(jsonOut)); got != `{"nodes":[]}` {
		t.Fatalf("want empty node list, got %q", got)
	}

	yamlOut, err := NewYAML().Render(ctx, model.Document{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("yaml render: %v", err)
	}
	if got := strings.TrimSpace(string(yamlOut)); got != "nodes: []" {
		t.Fatalf("want empty node list, got %q", got)
	}
}

func TestRenderers_Metadata(t *testing.T) {
	for _, r := range []render.Renderer{NewJSON(), NewYAML()} {
		if r.Name() == "" || r.ContentType() == "" {
			t.Fatalf("renderer %T must declare name and content type", r)
		}
	}
}

func TestRenderers_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewJSON().Render(ctx, model.Document{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestRenderers_OmitResolvedTemplate(t *testing.T) {
	doc := compiler.New().Compile(`Footer { text: "f"; } Alert { message: "m"; type: "info"; }`)
	if err := widgets.NewRegistry().Decorate(&doc); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	for _, renderer := range []render.Renderer{NewJSON(), NewYAML()} {
		out, err := renderer.Render(testsupport.Context(), doc, render.RenderOptions{})
		if err != nil {
			t.Fatalf("%s render: %v", renderer.Name(), err)
		}
		if strings.Contains(string(out), widgets.TemplateKey) {
			t.Fatalf("%s output leaks the resolved template:\n%s", renderer.Name(), out)
		}
		if !strings.Contains(string(out), "color") {
			t.Fatalf("%s output lost computed values:\n%s", renderer.Name(), out)
		}
	}
	if widgets.Template(doc.Nodes[0]) == "" {
		t.Fatalf("render mutated the caller's document")
	}
}
