package orchestrator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

var (
	// ErrThemeNotFound is returned when a selector has no manifest for the
	// requested theme.
	ErrThemeNotFound = errors.New("orchestrator: theme not found")
	// ErrVariantNotFound is returned when the selected manifest lacks the
	// requested variant.
	ErrVariantNotFound = errors.New("orchestrator: theme variant not found")
)

func (o *Orchestrator) themeConfig(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return rendererConfig(selection, o.themeFallbacks), nil
}

// rendererConfig flattens a selection into the view renderers consume:
// manifest values first, variant overrides on top, fallbacks under templates.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	var (
		tokens    map[string]string
		templates map[string]string
		prefix    string
		files     map[string]string
	)
	if m := selection.Manifest; m != nil {
		tokens = mergeStrings(tokens, m.Tokens)
		templates = mergeStrings(templates, m.Templates)
		prefix = m.Assets.Prefix
		files = mergeStrings(files, m.Assets.Files)
		if v, ok := m.Variants[selection.Variant]; ok {
			tokens = mergeStrings(tokens, v.Tokens)
			templates = mergeStrings(templates, v.Templates)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
			files = mergeStrings(files, v.Assets.Files)
		}
	}

	cfg.Tokens = tokens
	cfg.CSSVars = render.CSSVars(tokens)
	cfg.Partials = mergeStrings(cloneStrings(fallbacks), templates)
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

// defaultThemeFallbacks maps every builtin widget partial key to the embedded
// template path so themes only need to list the widgets they override.
func defaultThemeFallbacks() map[string]string {
	kinds := grammar.Builtin().Kinds()
	out := make(map[string]string, len(kinds)+1)
	for _, kind := range kinds {
		name := widgets.TemplateName(kind)
		out["widgets."+name] = "widgets/" + name
	}
	out["widgets."+widgets.WidgetGeneric] = "widgets/" + widgets.WidgetGeneric
	return out
}

// ManifestSelector resolves themes from in-memory go-theme manifests.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	order          []string
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests and records the theme and variant
// used when a request leaves them empty. An empty default theme selects the
// first registered manifest.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, m := range manifests {
		if err := s.Register(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a manifest. Names must be unique.
func (s *ManifestSelector) Register(m *theme.Manifest) error {
	if m == nil {
		return errors.New("orchestrator: theme manifest is nil")
	}
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return errors.New("orchestrator: theme manifest requires a name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("orchestrator: theme %q already registered", name)
	}
	s.manifests[name] = m
	s.order = append(s.order, name)
	return nil
}

// Select implements theme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	if name == "" && len(s.order) > 0 {
		name = s.order[0]
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
		if _, ok := manifest.Variants[variant]; !ok {
			variant = ""
		}
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q in theme %q", ErrVariantNotFound, variant, name)
		}
	}

	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// LoadManifest decodes a YAML (or JSON) theme manifest.
func LoadManifest(r io.Reader) (*theme.Manifest, error) {
	var m theme.Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("orchestrator: decode theme manifest: %w", err)
	}
	if strings.TrimSpace(m.Name) == "" {
		return nil, errors.New("orchestrator: theme manifest requires a name")
	}
	return &m, nil
}

// LoadManifestFile reads a theme manifest from disk.
func LoadManifestFile(path string) (*theme.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: open theme manifest: %w", err)
	}
	defer f.Close()
	return LoadManifest(f)
}

func mergeStrings(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneStrings(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
