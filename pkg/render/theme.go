package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// CSSVarPrefix is prepended to token names when deriving CSS custom
// properties.
const CSSVarPrefix = "--"

// CSSVars derives CSS custom properties from theme tokens: {"brand": "#123"}
// becomes {"--brand": "#123"}. Tokens already carrying the prefix are kept.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, CSSVarPrefix) {
			key = CSSVarPrefix + key
		}
		out[key] = value
	}
	return out
}

// CSSVarsStyle renders custom properties as an inline declaration list sorted
// by name, e.g. "--accent: red; --brand: #123".
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

// Token returns the theme token for key, or fallback when there is no theme
// or the token is unset.
func Token(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if value := strings.TrimSpace(cfg.Tokens[key]); value != "" {
		return value
	}
	return fallback
}

// Partial returns the template override registered for key, or fallback.
func Partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if value := strings.TrimSpace(cfg.Partials[key]); value != "" {
		return value
	}
	return fallback
}
