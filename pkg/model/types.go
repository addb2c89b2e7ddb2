package model

// Size is a width/height pair expressed in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

var (
	// MinLayoutSize is the lower drag clamp applied to every resizable node.
	MinLayoutSize = Size{Width: 50, Height: 30}
	// MaxLayoutSize is the upper drag clamp applied to every resizable node.
	MaxLayoutSize = Size{Width: 500, Height: 300}
)

// Layout describes the resizable container wrapping a node. Width and Height
// hold the declared size as written in the source; MinSize and MaxSize are the
// fixed drag clamp bounds and do not depend on the declared size.
type Layout struct {
	Width   int  `json:"width" yaml:"width"`
	Height  int  `json:"height" yaml:"height"`
	MinSize Size `json:"minSize" yaml:"minSize"`
	MaxSize Size `json:"maxSize" yaml:"maxSize"`
}

// NewLayout returns a layout for the declared size with the standard clamp
// bounds attached.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		MinSize: MinLayoutSize,
		MaxSize: MaxLayoutSize,
	}
}

// Clamped returns the declared size forced into [MinSize, MaxSize].
func (l Layout) Clamped() Size {
	return Size{
		Width:  clamp(l.Width, l.MinSize.Width, l.MaxSize.Width),
		Height: clamp(l.Height, l.MinSize.Height, l.MaxSize.Height),
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if hi >= lo && value > hi {
		return hi
	}
	return value
}

// Pair is one entry of a pairList attribute, e.g. a navigation link.
type Pair struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

// Span locates the declaration a node was compiled from as byte offsets into
// the source text. End is exclusive.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// WidgetNode is one compiled widget declaration.
type WidgetNode struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Identity   string         `json:"identity" yaml:"identity"`
	Attributes Attributes     `json:"attributes" yaml:"attributes"`
	Layout     *Layout        `json:"layout,omitempty" yaml:"layout,omitempty"`
	Computed   map[string]any `json:"computed,omitempty" yaml:"computed,omitempty"`
	Span       Span           `json:"span" yaml:"span"`
}

// Resizable reports whether the node should be wrapped in a resizable
// container.
func (n WidgetNode) Resizable() bool {
	return n.Layout != nil
}

// Clone returns a deep copy of the node.
func (n WidgetNode) Clone() WidgetNode {
	out := n
	out.Attributes = n.Attributes.Clone()
	if n.Layout != nil {
		layout := *n.Layout
		out.Layout = &layout
	}
	if n.Computed != nil {
		out.Computed = make(map[string]any, len(n.Computed))
		for key, value := range n.Computed {
			out.Computed[key] = value
		}
	}
	return out
}
