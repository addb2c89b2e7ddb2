package grammar

import "errors"

var (
	// ErrDuplicateKind is returned when two entries share a kind identifier.
	ErrDuplicateKind = errors.New("grammar: duplicate kind")
	// ErrInvalidEntry is returned for entries missing a kind or fields.
	ErrInvalidEntry = errors.New("grammar: invalid entry")
	// ErrUnknownFieldType is returned when a field declares an unsupported type.
	ErrUnknownFieldType = errors.New("grammar: unknown field type")
)
