// Package grammar holds the catalogue of widget kinds the compiler
// understands. Each Entry describes one kind's declaration syntax as data: the
// ordered field list with field types, whether matches are resizable, and
// which field supplies the node identity. The built-in registry carries the
// 33 standard kinds in a fixed order; that order is the output grouping order
// of the compiler. Extra kinds can be loaded from YAML or JSON definition
// files and appended with Registry.With, which returns a new registry and
// leaves the original untouched.
package grammar
