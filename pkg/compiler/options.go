package compiler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
)

// Ordering selects how nodes of different kinds are ordered in the output.
type Ordering string

const (
	// OrderGrouped groups nodes by kind in registry order, then by source
	// position within each kind.
	OrderGrouped Ordering = "grouped"
	// OrderSource orders every node by its source position regardless of kind.
	OrderSource Ordering = "source"
)

// ParseOrdering maps a configuration value onto an Ordering. An empty value
// selects OrderGrouped.
func ParseOrdering(value string) (Ordering, error) {
	switch Ordering(strings.ToLower(strings.TrimSpace(value))) {
	case "", OrderGrouped:
		return OrderGrouped, nil
	case OrderSource:
		return OrderSource, nil
	default:
		return "", fmt.Errorf("compiler: unknown ordering %q", value)
	}
}

// Option customises a Compiler.
type Option func(*Compiler)

// WithRegistry compiles against a custom grammar registry instead of the
// built-in one.
func WithRegistry(reg *grammar.Registry) Option {
	return func(c *Compiler) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithOrdering selects the output ordering strategy.
func WithOrdering(ordering Ordering) Option {
	return func(c *Compiler) {
		if ordering != "" {
			c.ordering = ordering
		}
	}
}

// WithCache memoises up to size documents keyed by source text. Cached
// documents are deep-copied on the way out, so callers still receive freshly
// allocated nodes. A size of zero or less disables the cache.
func WithCache(size int) Option {
	return func(c *Compiler) {
		c.cacheSize = size
	}
}

// WithLogger routes compile diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}
