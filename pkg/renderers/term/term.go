// Package term renders documents as a styled outline for terminals.
package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
	"github.com/goliatone/go-widgetdsl/pkg/widgets"
)

// Name is the registry name of the terminal renderer.
const Name = "term"

// DefaultAccent is the border and kind colour used without a theme.
const DefaultAccent = "99"

const maxIdentityWidth = 60

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithOutput sets the writer whose capabilities decide the colour profile.
// Writers that are not terminals get plain text.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.lg = lipgloss.NewRenderer(w)
		}
	}
}

// WithSpans adds each node's source offsets to the outline.
func WithSpans(enabled bool) Option {
	return func(r *Renderer) {
		r.spans = enabled
	}
}

// Renderer prints one bordered block per node with its attributes, layout and
// computed values.
type Renderer struct {
	lg    *lipgloss.Renderer
	spans bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the terminal renderer. Output defaults to stdout.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.lg == nil {
		r.lg = lipgloss.NewRenderer(os.Stdout)
	}
	return r
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

type styles struct {
	title lipgloss.Style
	block lipgloss.Style
	kind  lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
}

func (r *Renderer) styles(opts render.RenderOptions) styles {
	accent := lipgloss.Color(render.Token(opts.Theme, "primary", DefaultAccent))
	return styles{
		title: r.lg.NewStyle().Bold(true).Foreground(accent),
		block: r.lg.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		kind:  r.lg.NewStyle().Bold(true).Foreground(accent),
		label: r.lg.NewStyle().Foreground(lipgloss.Color("244")),
		value: r.lg.NewStyle(),
		muted: r.lg.NewStyle().Faint(true),
	}
}

func (r *Renderer) Render(ctx context.Context, doc model.Document, opts render.RenderOptions) ([]byte, error) {
	st := r.styles(opts)

	title := opts.Title
	if title == "" {
		title = "widgetdsl"
	}
	var b strings.Builder
	b.WriteString(st.title.Render(fmt.Sprintf("%s (%d widgets)", title, doc.Len())))
	b.WriteString("\n")
	if doc.Empty() {
		b.WriteString(st.muted.Render("no widgets"))
		b.WriteString("\n")
		return []byte(b.String()), nil
	}

	for _, node := range doc.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.WriteString(st.block.Render(r.nodeBody(node, st)))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (r *Renderer) nodeBody(node model.WidgetNode, st styles) string {
	lines := []string{st.kind.Render(node.Kind) + " " + st.muted.Render(shorten(node.Identity))}

	for _, name := range sortedKeys(node.Attributes) {
		lines = append(lines, st.label.Render(name+":")+" "+st.value.Render(render.FormatValue(node.Attributes[name])))
	}
	if node.Layout != nil {
		size := node.Layout.Clamped()
		lines = append(lines, st.label.Render("layout:")+" "+st.value.Render(fmt.Sprintf(
			"%dx%d (declared %dx%d, min %dx%d, max %dx%d)",
			size.Width, size.Height,
			node.Layout.Width, node.Layout.Height,
			node.Layout.MinSize.Width, node.Layout.MinSize.Height,
			node.Layout.MaxSize.Width, node.Layout.MaxSize.Height,
		)))
	}
	for _, key := range sortedKeys(node.Computed) {
		if key == widgets.TemplateKey {
			continue
		}
		lines = append(lines, st.label.Render("="+key+":")+" "+st.value.Render(render.FormatValue(node.Computed[key])))
	}
	if r.spans {
		lines = append(lines, st.muted.Render(fmt.Sprintf("@%d-%d", node.Span.Start, node.Span.End)))
	}
	return strings.Join(lines, "\n")
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func shorten(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= maxIdentityWidth {
		return s
	}
	return string(runes[:maxIdentityWidth-1]) + "…"
}
