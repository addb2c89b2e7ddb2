package grammar

import (
	"fmt"
	"sync"
)

// Registry is an ordered, read-only catalogue of grammar entries. The entry
// order is significant: the compiler scans kinds in this order and groups its
// output accordingly. A Registry is safe for concurrent use because it is
// never mutated after construction.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry validates the entries and returns a registry holding them in
// the given order.
func NewRegistry(entries ...Entry) (*Registry, error) {
	reg := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if err := reg.add(entry); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// MustNewRegistry panics when NewRegistry fails. Useful for init-time wiring.
func MustNewRegistry(entries ...Entry) *Registry {
	reg, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return reg
}

func (r *Registry) add(entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, exists := r.index[entry.Kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, entry.Kind)
	}
	r.index[entry.Kind] = len(r.entries)
	r.entries = append(r.entries, entry.clone())
	return nil
}

// With returns a new registry with the supplied entries appended after the
// existing ones. The receiver is left unchanged.
func (r *Registry) With(entries ...Entry) (*Registry, error) {
	combined := append(r.Entries(), entries...)
	return NewRegistry(combined...)
}

// Entries returns a copy of the entries in registry order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.clone()
	}
	return out
}

// Lookup returns the entry registered for kind.
func (r *Registry) Lookup(kind string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	idx, ok := r.index[kind]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx].clone(), true
}

// Position reports the zero-based registry position of kind, or -1.
func (r *Registry) Position(kind string) int {
	if r == nil {
		return -1
	}
	if idx, ok := r.index[kind]; ok {
		return idx
	}
	return -1
}

// Kinds lists the registered kinds in registry order.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.Kind
	}
	return out
}

// Len reports the number of registered kinds.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the shared registry of standard widget kinds.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = MustNewRegistry(BuiltinEntries()...)
	})
	return builtin
}
