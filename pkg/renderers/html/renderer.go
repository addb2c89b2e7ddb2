package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	rendertemplate "github.com/goliatone/go-widgetdsl/pkg/render/template"
	"github.com/goliatone/go-widgetdsl/pkg/render/template/gotemplate"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

// DefaultTitle is the page title used when RenderOptions.Title is empty.
const DefaultTitle = "widgetdsl"

type Option func(*config)

type config struct {
	templateFS       []fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	sanitize         bool
	maxRepeat        int
}

// WithTemplatesFS layers an alternate template bundle over the embedded one.
// Templates missing from files fall back to the built-in versions.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = append(cfg.templateFS, files)
		}
	}
}

// WithTemplatesDir layers templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = append(cfg.templateFS, os.DirFS(path))
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgetRegistry replaces the registry used to pick widget templates for
// nodes that were not decorated upstream.
func WithWidgetRegistry(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

// WithSanitize toggles the bluemonday pass over widget markup. It is on by
// default.
func WithSanitize(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// WithMaxRepeat caps the number of page buttons or grid cells per widget.
func WithMaxRepeat(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxRepeat = n
		}
	}
}

// Renderer produces a standalone HTML page, or a fragment, from a document.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	widgets   *widgets.Registry
	sanitize  bool
	maxRepeat int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{sanitize: true, maxRepeat: DefaultMaxRepeat}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := make([]gotemplate.Option, 0, len(cfg.templateFS)+1)
		for _, files := range cfg.templateFS {
			engineOpts = append(engineOpts, gotemplate.WithFS(files))
		}
		engineOpts = append(engineOpts, gotemplate.WithFS(TemplatesFS()))
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	return &Renderer{
		templates: renderer,
		widgets:   cfg.widgets,
		sanitize:  cfg.sanitize,
		maxRepeat: cfg.maxRepeat,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits one widget per node in document order. Resizable nodes are
// wrapped in a container sized to their clamped layout that carries the
// min/max drag bounds.
func (r *Renderer) Render(ctx context.Context, doc model.Document, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	frames := make([]frameView, 0, doc.Len())
	for _, node := range doc.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		markup, err := r.renderWidget(node, opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, newFrameView(node, markup))
	}

	style := rootStyle(opts.Theme)
	fragmentStyle := ""
	if opts.Fragment {
		fragmentStyle = style
	}
	body, err := r.templates.RenderTemplate("fragment", map[string]any{
		"widgets":   frames,
		"rootStyle": fragmentStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render fragment: %w", err)
	}
	if opts.Fragment {
		return []byte(body), nil
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	page, err := r.templates.RenderTemplate("document", map[string]any{
		"title":     title,
		"rootStyle": style,
		"body":      body,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render document: %w", err)
	}
	return []byte(page), nil
}

func (r *Renderer) renderWidget(node model.WidgetNode, opts render.RenderOptions) (string, error) {
	name, ok := r.widgets.Resolve(node)
	if !ok {
		name = widgets.WidgetGeneric
	}
	path := render.Partial(opts.Theme, "widgets."+name, "widgets/"+name)

	markup, err := r.templates.RenderTemplate(path, newWidgetView(node, opts.Theme, r.maxRepeat))
	if err != nil {
		return "", fmt.Errorf("html renderer: render %s widget: %w", node.Kind, err)
	}
	if r.sanitize {
		markup = sanitizeWidget(markup)
	}
	return markup, nil
}
