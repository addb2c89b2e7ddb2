package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/data"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/html"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/term"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithCompiler injects a configured compiler (custom grammar, ordering,
// cache or logger).
func WithCompiler(c *compiler.Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = c
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against a copy of the compiled
// document before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithWidgetRegistry replaces the template resolution registry applied to
// every document.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgetRegistry = registry
	}
}

// WithThemeSelector configures the go-theme selector used to resolve theme
// tokens and template overrides for each request.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks sets partial fallbacks merged under the selected
// theme's templates.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = cloneStrings(fallbacks)
	}
}

// Orchestrator coordinates the pipeline from DSL source to rendered output.
// It applies defaults (builtin grammar, html/json/yaml/term renderers, widget
// template resolution) while remaining open to dependency injection.
type Orchestrator struct {
	compiler        *compiler.Compiler
	registry        *render.Registry
	defaultRenderer string
	widgetRegistry  *widgets.Registry
	decorators      []model.Decorator
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render of a DSL source.
type Request struct {
	// Source is the raw DSL text. Empty text renders an empty document.
	Source string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	// Empty values defer to the selector's defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions. A non-nil Theme skips
	// theme selection.
	RenderOptions render.RenderOptions
}

// Compile runs the compiler and the configured decorators. The returned
// document is a copy callers may keep.
func (o *Orchestrator) Compile(ctx context.Context, source string) (model.Document, error) {
	if ctx == nil {
		return model.Document{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Document{}, err
	}

	doc := o.compiler.Compile(source).Clone()
	if err := o.applyDecorators(&doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// Generate executes compile → decorate → theme → render and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	doc, err := o.Compile(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.themeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Compiler exposes the compiler used by Compile and Generate.
func (o *Orchestrator) Compiler() *compiler.Compiler {
	return o.compiler
}

// WidgetRegistry exposes the template resolution registry so callers can
// inspect or extend it.
func (o *Orchestrator) WidgetRegistry() *widgets.Registry {
	return o.widgetRegistry
}

// RegisterWidget adds a template rule applied during decoration.
func (o *Orchestrator) RegisterWidget(name string, priority int, matcher widgets.Matcher) {
	if o.widgetRegistry == nil {
		o.widgetRegistry = widgets.NewRegistry()
	}
	o.widgetRegistry.Register(name, priority, matcher)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(doc *model.Document) error {
	if o.widgetRegistry != nil {
		if err := o.widgetRegistry.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: resolve widget templates: %w", err)
		}
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: decorate document: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.compiler == nil {
		o.compiler = compiler.New()
	}
	if o.widgetRegistry == nil {
		o.widgetRegistry = widgets.NewRegistry()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerDefaultRenderers()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerDefaultRenderers() {
	preview, err := html.New(html.WithWidgetRegistry(o.widgetRegistry))
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	o.registry.MustRegister(preview)
	o.registry.MustRegister(data.NewJSON())
	o.registry.MustRegister(data.NewYAML())
	o.registry.MustRegister(term.New())
}
