package compiler

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// Coerce converts a raw field capture into the Go value for its type:
//
//	string     -> string, verbatim
//	boolean    -> bool, true only for the literal "true"
//	integer    -> int, 0 when the digits overflow
//	stringList -> []string
//	pairList   -> []model.Pair
//	rowMatrix  -> [][]string
func Coerce(t grammar.FieldType, raw string) any {
	switch t {
	case grammar.FieldBoolean:
		return raw == "true"
	case grammar.FieldInteger:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0
		}
		return n
	case grammar.FieldStringList:
		return splitList(raw)
	case grammar.FieldPairList:
		return splitPairs(raw)
	case grammar.FieldRowMatrix:
		return splitRows(raw)
	default:
		return raw
	}
}

// ParseLeadingInt reads an optionally signed run of leading decimal digits,
// ignoring surrounding whitespace and any trailing text ("100px" is 100).
// Input without leading digits, or whose digits overflow, yields 0.
func ParseLeadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func listItem(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `"`, "")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, grammar.ListDelimiter)
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = listItem(part)
	}
	return out
}

func splitPairs(raw string) []model.Pair {
	parts := strings.Split(raw, grammar.ListDelimiter)
	out := make([]model.Pair, len(parts))
	for i, part := range parts {
		label, target, _ := strings.Cut(part, grammar.PairDelimiter)
		out[i] = model.Pair{Label: listItem(label), Target: listItem(target)}
	}
	return out
}

func splitRows(raw string) [][]string {
	lines := strings.Split(raw, grammar.RowDelimiter)
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = splitList(line)
	}
	return out
}
