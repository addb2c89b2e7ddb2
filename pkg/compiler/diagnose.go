package compiler

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/goliatone/go-widgetdsl/internal/suggest"
)

var declarationKeyword = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\{`)

// Diagnostic flags a declaration-looking keyword the grammar does not know.
type Diagnostic struct {
	Keyword    string `json:"keyword"`
	Offset     int    `json:"offset"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Diagnose lists keywords followed by "{" that are not registered kinds,
// with the closest known kind when one is a likely typo. It never affects
// compilation.
func (c *Compiler) Diagnose(source string) []Diagnostic {
	kinds := c.registry.Kinds()
	var out []Diagnostic
	for _, loc := range declarationKeyword.FindAllStringSubmatchIndex(source, -1) {
		keyword := source[loc[2]:loc[3]]
		if c.matchesKind(keyword, kinds) {
			continue
		}
		out = append(out, Diagnostic{
			Keyword:    keyword,
			Offset:     loc[2],
			Suggestion: suggest.Closest(keyword, kinds),
		})
	}
	return out
}

// matchesKind reports whether the matcher would accept keyword as a kind.
// Patterns are not word-anchored, so "MyButton {" is a Button declaration.
func (c *Compiler) matchesKind(keyword string, kinds []string) bool {
	if _, known := c.registry.Lookup(keyword); known {
		return true
	}
	for _, kind := range kinds {
		if strings.HasSuffix(keyword, kind) {
			return true
		}
	}
	return false
}

// declaredKeywords returns every keyword written directly before a "{".
func declaredKeywords(source string) map[string]bool {
	out := make(map[string]bool)
	for _, m := range declarationKeyword.FindAllStringSubmatch(source, -1) {
		out[m[1]] = true
	}
	return out
}

func (c *Compiler) logDiagnostics(source string) {
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, d := range c.Diagnose(source) {
		c.logger.Debug("unknown kind", "keyword", d.Keyword, "offset", d.Offset, "suggestion", d.Suggestion)
	}
}
