package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType enumerates the value shapes a declaration field can take.
type FieldType string

const (
	// FieldString is a double-quoted, non-empty string literal.
	FieldString FieldType = "string"
	// FieldBoolean is a bare true/false literal.
	FieldBoolean FieldType = "boolean"
	// FieldInteger is a bare decimal digit sequence.
	FieldInteger FieldType = "integer"
	// FieldStringList is a bracketed, comma separated list.
	FieldStringList FieldType = "stringList"
	// FieldPairList is a bracketed, comma separated list of label/target
	// entries split on PairDelimiter.
	FieldPairList FieldType = "pairList"
	// FieldRowMatrix is a bracketed list of semicolon separated rows, each row
	// comma separated into cells.
	FieldRowMatrix FieldType = "rowMatrix"
)

const (
	// ListDelimiter separates list items and row cells.
	ListDelimiter = ","
	// RowDelimiter separates rowMatrix rows.
	RowDelimiter = ";"
	// PairDelimiter separates the label from the target in a pairList item.
	PairDelimiter = "/"
)

// Valid reports whether the type is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldString, FieldBoolean, FieldInteger, FieldStringList, FieldPairList, FieldRowMatrix:
		return true
	default:
		return false
	}
}

// List reports whether the field is written in bracket syntax.
func (t FieldType) List() bool {
	return t == FieldStringList || t == FieldPairList || t == FieldRowMatrix
}

// Field is one named, typed slot of a declaration.
type Field struct {
	Name string    `json:"name" yaml:"name"`
	Type FieldType `json:"type" yaml:"type"`
}

// Identity selects how a node's identity key is derived. When Field is empty
// the raw matched declaration text is used. Raw picks the uncoerced capture
// instead of the coerced value; Prefix is prepended verbatim.
type Identity struct {
	Field  string `json:"field,omitempty" yaml:"field,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Raw    bool   `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Entry describes one widget kind.
type Entry struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Fields      []Field  `json:"fields" yaml:"fields"`
	Resizable   bool     `json:"resizable,omitempty" yaml:"resizable,omitempty"`
	Identity    Identity `json:"identity,omitempty" yaml:"identity,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the entry is usable by the matcher.
func (e Entry) Validate() error {
	kind := strings.TrimSpace(e.Kind)
	if kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidEntry)
	}
	if !identifierPattern.MatchString(kind) {
		return fmt.Errorf("%w: kind %q is not an identifier", ErrInvalidEntry, kind)
	}
	if len(e.Fields) == 0 {
		return fmt.Errorf("%w: kind %q declares no fields", ErrInvalidEntry, kind)
	}
	seen := make(map[string]struct{}, len(e.Fields))
	for _, field := range e.Fields {
		if !identifierPattern.MatchString(field.Name) {
			return fmt.Errorf("%w: kind %q field %q is not an identifier", ErrInvalidEntry, kind, field.Name)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("%w: kind %q repeats field %q", ErrInvalidEntry, kind, field.Name)
		}
		seen[field.Name] = struct{}{}
		if !field.Type.Valid() {
			return fmt.Errorf("%w: kind %q field %q has type %q", ErrUnknownFieldType, kind, field.Name, field.Type)
		}
	}
	if e.Identity.Field != "" {
		if _, ok := seen[e.Identity.Field]; !ok {
			return fmt.Errorf("%w: kind %q identity field %q is not declared", ErrInvalidEntry, kind, e.Identity.Field)
		}
	}
	if e.Resizable {
		for _, name := range []string{"width", "height"} {
			if _, ok := seen[name]; !ok {
				return fmt.Errorf("%w: resizable kind %q must declare %q", ErrInvalidEntry, kind, name)
			}
		}
	}
	return nil
}

// Field returns the named field.
func (e Entry) Field(name string) (Field, bool) {
	for _, field := range e.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists the field names in declaration order.
func (e Entry) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		names[i] = field.Name
	}
	return names
}

func (e Entry) clone() Entry {
	out := e
	out.Fields = append([]Field(nil), e.Fields...)
	return out
}
