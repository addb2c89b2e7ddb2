package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// FormatValue renders an attribute or computed value as display text, using
// the DSL's own delimiters for list shapes:
//
//	[]string     a, b, c
//	[]model.Pair Home/home, Docs/docs
//	[][]string   a, b; c, d
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return FormatNumber(v)
	case []string:
		return strings.Join(v, grammar.ListDelimiter+" ")
	case []model.Pair:
		parts := make([]string, len(v))
		for i, pair := range v {
			parts[i] = pair.Label + grammar.PairDelimiter + pair.Target
		}
		return strings.Join(parts, grammar.ListDelimiter+" ")
	case [][]string:
		rows := make([]string, len(v))
		for i, row := range v {
			rows[i] = strings.Join(row, grammar.ListDelimiter+" ")
		}
		return strings.Join(rows, grammar.RowDelimiter+" ")
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber prints a float without trailing zeros: 5 -> "5", 2.5 -> "2.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
