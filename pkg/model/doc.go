// Package model defines the renderer-agnostic document produced by the widget
// compiler. A Document is an ordered list of WidgetNode values; each node
// carries the widget kind, its coerced attributes keyed by field name, an
// optional resizable Layout, the identity key renderers use for stable list
// rendering, and a small set of Computed presentation values (alert colours,
// progress fill, and similar) derived from the attributes. Nodes are plain
// values: they are built fresh on every compile and never mutated afterwards,
// so renderers may share them freely across goroutines.
package model
