package main

import (
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/internal/config"
	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/orchestrator"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/data"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/html"
	"github.com/goliatone/go-widgetdsl/pkg/renderers/term"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

// app bundles everything a command needs after configuration is resolved.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	grammar *grammar.Registry
	orch    *orchestrator.Orchestrator
}

func newApp(flags *globalFlags, std streams) (*app, error) {
	logger := newLogger(flags.verbose, std.err)

	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	reg, err := loadGrammar(cfg.Grammar.Files)
	if err != nil {
		return nil, err
	}

	ordering, err := cfg.CompilerOrdering()
	if err != nil {
		return nil, err
	}
	comp := compiler.New(
		compiler.WithRegistry(reg),
		compiler.WithOrdering(ordering),
		compiler.WithCache(cfg.Cache.Size),
		compiler.WithLogger(logger),
	)

	widgetRegistry := widgets.NewRegistry()
	renderers, err := newRenderers(cfg, widgetRegistry, std.out)
	if err != nil {
		return nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithCompiler(comp),
		orchestrator.WithRegistry(renderers),
		orchestrator.WithWidgetRegistry(widgetRegistry),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
	}
	if len(cfg.Theme.Files) > 0 {
		selector, err := loadThemes(cfg.Theme)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	}

	logger.Debug("configuration loaded",
		"renderer", cfg.Renderer,
		"ordering", ordering,
		"kinds", reg.Len(),
		"themes", len(cfg.Theme.Files),
	)

	return &app{
		cfg:     cfg,
		logger:  logger,
		grammar: reg,
		orch:    orchestrator.New(options...),
	}, nil
}

func loadGrammar(files []string) (*grammar.Registry, error) {
	reg := grammar.Builtin()
	for _, path := range files {
		entries, err := grammar.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if reg, err = reg.With(entries...); err != nil {
			return nil, fmt.Errorf("grammar %s: %w", path, err)
		}
	}
	return reg, nil
}

func newRenderers(cfg config.Config, widgetRegistry *widgets.Registry, out io.Writer) (*render.Registry, error) {
	preview, err := html.New(
		html.WithWidgetRegistry(widgetRegistry),
		html.WithSanitize(cfg.HTML.Sanitize),
	)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	for _, r := range []render.Renderer{
		preview,
		data.NewJSON(),
		data.NewYAML(),
		term.New(term.WithOutput(out)),
	} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func loadThemes(cfg config.ThemeConfig) (*orchestrator.ManifestSelector, error) {
	manifests := make([]*theme.Manifest, 0, len(cfg.Files))
	for _, path := range cfg.Files {
		m, err := orchestrator.LoadManifestFile(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return orchestrator.NewManifestSelector(cfg.Name, cfg.Variant, manifests...)
}
