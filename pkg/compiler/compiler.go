package compiler

import (
	"io"
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-widgetdsl/internal/match"
	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// Compiler compiles DSL source into documents. A Compiler holds no mutable
// state besides its optional cache and is safe for concurrent use.
type Compiler struct {
	registry  *grammar.Registry
	entries   []grammar.Entry
	ordering  Ordering
	cacheSize int
	cache     *lru.Cache[string, model.Document]
	logger    *slog.Logger
}

// New constructs a Compiler. Without options it uses the built-in registry,
// grouped ordering, no cache and a discarding logger.
func New(options ...Option) *Compiler {
	c := &Compiler{
		registry: grammar.Builtin(),
		ordering: OrderGrouped,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.cacheSize > 0 {
		if cache, err := lru.New[string, model.Document](c.cacheSize); err == nil {
			c.cache = cache
		}
	}
	c.entries = c.registry.Entries()
	return c
}

var (
	defaultOnce     sync.Once
	defaultCompiler *Compiler
)

// Compile compiles source with the default compiler.
func Compile(source string) model.Document {
	defaultOnce.Do(func() {
		defaultCompiler = New()
	})
	return defaultCompiler.Compile(source)
}

// Registry returns the grammar registry the compiler was built with.
func (c *Compiler) Registry() *grammar.Registry {
	return c.registry
}

// Ordering reports the configured ordering strategy.
func (c *Compiler) Ordering() Ordering {
	return c.ordering
}

// Compile turns source into a document. It always returns a well-formed,
// possibly empty, document.
func (c *Compiler) Compile(source string) model.Document {
	if c.cache != nil {
		if doc, ok := c.cache.Get(source); ok {
			c.logger.Debug("compiled document",
				"nodes", doc.Len(),
				"bytes", len(source),
				"cached", true,
			)
			return doc.Clone()
		}
	}

	doc := c.compile(source)
	c.logDiagnostics(source)
	if c.cache != nil {
		c.cache.Add(source, doc.Clone())
	}
	c.logger.Debug("compiled document",
		"nodes", doc.Len(),
		"kinds", doc.Kinds(),
		"bytes", len(source),
		"cached", false,
	)
	return doc
}

func (c *Compiler) compile(source string) model.Document {
	nodes := make([]model.WidgetNode, 0)
	var declared map[string]bool
	for _, entry := range c.entries {
		captures := match.Match(entry, source)
		if len(captures) == 0 {
			if declared == nil {
				declared = declaredKeywords(source)
			}
			if declared[entry.Kind] {
				c.logger.Debug("kind mentioned but no declaration matched", "kind", entry.Kind)
			}
			continue
		}
		for _, capture := range captures {
			nodes = append(nodes, buildNode(entry, capture))
		}
	}

	if c.ordering == OrderSource {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].Span.Start < nodes[j].Span.Start
		})
	}
	return model.Document{Nodes: nodes}
}

func buildNode(entry grammar.Entry, capture match.Capture) model.WidgetNode {
	attrs := make(model.Attributes, len(entry.Fields))
	for i, field := range entry.Fields {
		attrs[field.Name] = Coerce(field.Type, capture.Values[i])
	}

	node := model.WidgetNode{
		Kind:       entry.Kind,
		Attributes: attrs,
		Span:       model.Span{Start: capture.Start, End: capture.End},
	}
	if entry.Resizable {
		layout := model.NewLayout(ParseLeadingInt(attrs.String("width")), ParseLeadingInt(attrs.String("height")))
		node.Layout = &layout
	}
	node.Identity = identity(entry, capture, attrs)
	node.Computed = computed(entry.Kind, attrs)
	return node
}

func identity(entry grammar.Entry, capture match.Capture, attrs model.Attributes) string {
	rule := entry.Identity
	if rule.Field == "" {
		return capture.Text
	}
	raw, _ := capture.Value(entry, rule.Field)
	value := raw
	if !rule.Raw {
		if coerced := attrs.String(rule.Field); coerced != "" {
			value = coerced
		}
	}
	return rule.Prefix + value
}
