// Package data provides renderers that serialise the compiled document as-is,
// for consumers that do their own presentation.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

// Renderer names.
const (
	JSONName = "json"
	YAMLName = "yaml"
)

// JSONOption configures the JSON renderer.
type JSONOption func(*JSON)

// WithIndent sets the indentation string. An empty indent produces compact
// output.
func WithIndent(indent string) JSONOption {
	return func(r *JSON) {
		r.indent = indent
	}
}

// JSON renders documents as JSON.
type JSON struct {
	indent string
}

var _ render.Renderer = (*JSON)(nil)

// NewJSON constructs a JSON renderer with two-space indentation.
func NewJSON(options ...JSONOption) *JSON {
	r := &JSON{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *JSON) Name() string        { return JSONName }
func (r *JSON) ContentType() string { return "application/json" }

// Render encodes doc followed by a newline. HTML characters are left
// unescaped so identities read the way they were written.
func (r *JSON) Render(ctx context.Context, doc model.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(normalize(doc)); err != nil {
		return nil, fmt.Errorf("json renderer: encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders documents as YAML.
type YAML struct {
	indent int
}

var _ render.Renderer = (*YAML)(nil)

// NewYAML constructs a YAML renderer with two-space indentation.
func NewYAML() *YAML {
	return &YAML{indent: 2}
}

func (r *YAML) Name() string        { return YAMLName }
func (r *YAML) ContentType() string { return "application/yaml" }

func (r *YAML) Render(ctx context.Context, doc model.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.indent)
	if err := enc.Encode(normalize(doc)); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml renderer: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// normalize guarantees an explicit empty node list so both encoders emit
// "nodes: []" rather than null for empty documents. The template resolution
// written by the widget registry is presentation state and is dropped.
func normalize(doc model.Document) model.Document {
	if doc.Nodes == nil {
		return model.Document{Nodes: []model.WidgetNode{}}
	}
	if !hasTemplateKey(doc) {
		return doc
	}
	out := doc.Clone()
	for i := range out.Nodes {
		delete(out.Nodes[i].Computed, widgets.TemplateKey)
		if len(out.Nodes[i].Computed) == 0 {
			out.Nodes[i].Computed = nil
		}
	}
	return out
}

func hasTemplateKey(doc model.Document) bool {
	for _, node := range doc.Nodes {
		if _, ok := node.Computed[widgets.TemplateKey]; ok {
			return true
		}
	}
	return false
}
