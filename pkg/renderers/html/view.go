package html

import (
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

// DefaultPrimaryColor is used for active pagination/tab items, toasts and
// links when the theme does not define a "primary" token.
const DefaultPrimaryColor = "#007bff"

// DefaultMaxRepeat caps how many page buttons or grid cells a single widget
// expands into.
const DefaultMaxRepeat = 1000

// numericAttributes are size-like string attributes templates print as
// numbers.
var numericAttributes = []string{"width", "height", "size", "columns", "rows"}

type choice struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type fieldView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// widgetView is the data a widget template renders from.
type widgetView struct {
	Kind       string            `json:"kind"`
	Identity   string            `json:"identity"`
	Attrs      model.Attributes  `json:"attrs"`
	Computed   map[string]any    `json:"computed"`
	Num        map[string]string `json:"num"`
	Choices    []choice          `json:"choices"`
	Truncated  bool              `json:"truncated"`
	Fields     []fieldView       `json:"fields"`
	Primary    string            `json:"primary"`
	AlertColor string            `json:"alertColor"`
}

// frameView wraps a rendered widget for the page templates. Sizes are
// pre-formatted because template data goes through JSON and would otherwise
// print as floats.
type frameView struct {
	Kind      string `json:"kind"`
	Identity  string `json:"identity"`
	HTML      string `json:"html"`
	Resizable bool   `json:"resizable"`
	Width     string `json:"width"`
	Height    string `json:"height"`
	MinWidth  string `json:"minWidth"`
	MinHeight string `json:"minHeight"`
	MaxWidth  string `json:"maxWidth"`
	MaxHeight string `json:"maxHeight"`
}

func newWidgetView(node model.WidgetNode, cfg *theme.RendererConfig, maxRepeat int) widgetView {
	view := widgetView{
		Kind:     node.Kind,
		Identity: node.Identity,
		Attrs:    node.Attributes,
		Computed: node.Computed,
		Num:      numbers(node),
		Primary:  render.Token(cfg, "primary", DefaultPrimaryColor),
	}

	switch node.Kind {
	case grammar.KindAlert:
		color, _ := node.Computed[compiler.ComputedColor].(string)
		view.AlertColor = render.Token(cfg, "alert-"+node.Attributes.String("type"), color)
	case grammar.KindPagination:
		active, _ := node.Computed[compiler.ComputedActivePage].(int)
		view.Choices, view.Truncated = sequence(node.Attributes.Int("pages"), maxRepeat, func(n int) bool { return n == active })
	case grammar.KindTab:
		active, _ := node.Computed[compiler.ComputedActiveIndex].(int)
		for i, label := range node.Attributes.Strings("labels") {
			view.Choices = append(view.Choices, choice{Label: label, Active: i == active})
		}
	case grammar.KindGrid:
		cells, _ := node.Computed[compiler.ComputedCellCount].(int)
		view.Choices, view.Truncated = sequence(cells, maxRepeat, func(int) bool { return false })
	}

	names := make([]string, 0, len(node.Attributes))
	for name := range node.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		view.Fields = append(view.Fields, fieldView{Name: name, Value: render.FormatValue(node.Attributes[name])})
	}
	return view
}

func numbers(node model.WidgetNode) map[string]string {
	out := make(map[string]string)
	for _, name := range numericAttributes {
		if raw, ok := node.Attributes[name].(string); ok {
			out[name] = strconv.Itoa(compiler.ParseLeadingInt(raw))
		}
	}
	for key, value := range node.Computed {
		switch v := value.(type) {
		case int:
			out[key] = strconv.Itoa(v)
		case float64:
			out[key] = render.FormatNumber(v)
		}
	}
	return out
}

func sequence(count, limit int, active func(int) bool) ([]choice, bool) {
	if count <= 0 {
		return nil, false
	}
	truncated := false
	if limit > 0 && count > limit {
		count, truncated = limit, true
	}
	out := make([]choice, count)
	for i := range out {
		n := i + 1
		out[i] = choice{Label: strconv.Itoa(n), Active: active(n)}
	}
	return out, truncated
}

func newFrameView(node model.WidgetNode, html string) frameView {
	frame := frameView{Kind: node.Kind, Identity: node.Identity, HTML: html}
	if node.Layout == nil {
		return frame
	}
	size := node.Layout.Clamped()
	frame.Resizable = true
	frame.Width, frame.Height = strconv.Itoa(size.Width), strconv.Itoa(size.Height)
	frame.MinWidth, frame.MinHeight = strconv.Itoa(node.Layout.MinSize.Width), strconv.Itoa(node.Layout.MinSize.Height)
	frame.MaxWidth, frame.MaxHeight = strconv.Itoa(node.Layout.MaxSize.Width), strconv.Itoa(node.Layout.MaxSize.Height)
	return frame
}

// rootStyle renders theme custom properties for the page root. Characters
// that could close the style context are dropped.
func rootStyle(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	vars := cfg.CSSVars
	if len(vars) == 0 {
		vars = render.CSSVars(cfg.Tokens)
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}':
			return -1
		}
		return r
	}, render.CSSVarsStyle(vars))
}
