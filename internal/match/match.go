// Package match implements the kind matcher: it turns a grammar entry into a
// declaration pattern and extracts every non-overlapping occurrence of that
// declaration from a source text, left to right. Declarations that do not fit
// the pattern exactly (missing fields, wrong field order, unterminated quotes
// or brackets) are skipped silently.
package match

import (
	"regexp"
	"strings"
	"sync"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
)

// Capture is one matched declaration. Values holds the raw text captured for
// each field, aligned by position with the entry's Fields.
type Capture struct {
	Start  int
	End    int
	Text   string
	Values []string
}

// Value returns the raw capture for the named field.
func (c Capture) Value(entry grammar.Entry, name string) (string, bool) {
	for i, field := range entry.Fields {
		if field.Name == name && i < len(c.Values) {
			return c.Values[i], true
		}
	}
	return "", false
}

var patterns sync.Map // pattern source -> *regexp.Regexp

// Pattern returns the compiled declaration pattern for entry. Patterns are
// cached by their source so repeated compiles share one regexp.
func Pattern(entry grammar.Entry) *regexp.Regexp {
	source := PatternSource(entry)
	if cached, ok := patterns.Load(source); ok {
		return cached.(*regexp.Regexp)
	}
	compiled := regexp.MustCompile(source)
	actual, _ := patterns.LoadOrStore(source, compiled)
	return actual.(*regexp.Regexp)
}

// PatternSource renders the regular expression for entry:
//
//	Kind { field: value; field: value; ... }
//
// Whitespace is allowed between every token. The kind keyword is not anchored
// to a word boundary, so "MyButton { ... }" is a Button declaration.
func PatternSource(entry grammar.Entry) string {
	var b strings.Builder
	b.WriteString(regexp.QuoteMeta(entry.Kind))
	b.WriteString(`\s*\{`)
	for _, field := range entry.Fields {
		b.WriteString(`\s*`)
		b.WriteString(regexp.QuoteMeta(field.Name))
		b.WriteString(`\s*:\s*`)
		b.WriteString(valuePattern(field.Type))
		b.WriteString(`\s*;`)
	}
	b.WriteString(`\s*\}`)
	return b.String()
}

func valuePattern(t grammar.FieldType) string {
	switch t {
	case grammar.FieldBoolean:
		return `(true|false)`
	case grammar.FieldInteger:
		return `(\d+)`
	case grammar.FieldStringList, grammar.FieldPairList, grammar.FieldRowMatrix:
		return `\[([^\]]+)\]`
	default:
		return `"([^"]+)"`
	}
}

// Match returns every non-overlapping declaration of entry in source, in
// left-to-right order. It never fails; an empty result means no declaration
// matched.
func Match(entry grammar.Entry, source string) []Capture {
	if source == "" || len(entry.Fields) == 0 {
		return nil
	}
	if !strings.Contains(source, entry.Kind) {
		return nil
	}
	re := Pattern(entry)
	locs := re.FindAllStringSubmatchIndex(source, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Capture, 0, len(locs))
	for _, loc := range locs {
		capture := Capture{
			Start:  loc[0],
			End:    loc[1],
			Text:   source[loc[0]:loc[1]],
			Values: make([]string, len(entry.Fields)),
		}
		for i := range entry.Fields {
			start, end := loc[2*(i+1)], loc[2*(i+1)+1]
			if start >= 0 && end >= 0 {
				capture.Values[i] = source[start:end]
			}
		}
		out = append(out, capture)
	}
	return out
}
