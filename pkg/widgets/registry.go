package widgets

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// TemplateKey is the Computed entry the registry writes its resolution to.
const TemplateKey = "template"

// WidgetGeneric is the fallback template for kinds without a dedicated one,
// typically kinds added through grammar definition files.
const WidgetGeneric = "generic"

// Matcher decides whether a template should handle the supplied node.
type Matcher func(node model.WidgetNode) bool

// KindIs matches nodes of exactly one kind.
func KindIs(kind string) Matcher {
	return func(node model.WidgetNode) bool {
		return node.Kind == kind
	}
}

// TemplateName maps a kind onto its template name: "ProgressBar" becomes
// "progress_bar".
func TemplateName(kind string) string {
	var b strings.Builder
	for i, r := range kind {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects a template for each node based on an explicit choice or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a template.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with one rule per built-in kind plus the
// generic fallback.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided template name and priority.
// Later registrations with equal priority lose to earlier ones.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the template name for node. A template already recorded in
// node.Computed is honoured before matcher evaluation.
func (r *Registry) Resolve(node model.WidgetNode) (string, bool) {
	if explicit := Template(node); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(node) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator, recording the resolved template of
// every node under Computed[TemplateKey].
func (r *Registry) Decorate(doc *model.Document) error {
	if r == nil || doc == nil {
		return nil
	}
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		name, ok := r.Resolve(*node)
		if !ok || name == "" {
			continue
		}
		if node.Computed == nil {
			node.Computed = make(map[string]any, 1)
		}
		node.Computed[TemplateKey] = name
	}
	return nil
}

// Template returns the template recorded on node, if any.
func Template(node model.WidgetNode) string {
	if node.Computed == nil {
		return ""
	}
	name, _ := node.Computed[TemplateKey].(string)
	return strings.TrimSpace(name)
}

func (r *Registry) registerBuiltins() {
	for _, kind := range grammar.Builtin().Kinds() {
		r.Register(TemplateName(kind), 100, KindIs(kind))
	}
	r.Register(WidgetGeneric, 0, func(model.WidgetNode) bool { return true })
}
