package model

import "strconv"

// Attributes maps a field name to its coerced value. Values are one of:
// string, bool, int, []string, []Pair or [][]string, depending on the field
// type declared by the grammar entry.
type Attributes map[string]any

// String returns the named attribute as text. Non-string values are formatted
// so renderers can always print an attribute.
func (a Attributes) String(name string) string {
	switch v := a[name].(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Bool returns the named boolean attribute, false when absent.
func (a Attributes) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Int returns the named integer attribute, 0 when absent.
func (a Attributes) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Strings returns the named stringList attribute.
func (a Attributes) Strings(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Pairs returns the named pairList attribute.
func (a Attributes) Pairs(name string) []Pair {
	v, _ := a[name].([]Pair)
	return v
}

// Rows returns the named rowMatrix attribute.
func (a Attributes) Rows(name string) [][]string {
	v, _ := a[name].([][]string)
	return v
}

// Clone copies the attribute map and every slice value it holds.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for key, value := range a {
		switch v := value.(type) {
		case []string:
			out[key] = append([]string(nil), v...)
		case []Pair:
			out[key] = append([]Pair(nil), v...)
		case [][]string:
			rows := make([][]string, len(v))
			for i, row := range v {
				rows[i] = append([]string(nil), row...)
			}
			out[key] = rows
		default:
			out[key] = value
		}
	}
	return out
}
