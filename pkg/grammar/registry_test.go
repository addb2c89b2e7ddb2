package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltin_OrderAndSize(t *testing.T) {
	reg := Builtin()
	if reg.Len() != 33 {
		t.Fatalf("expected 33 builtin kinds, got %d", reg.Len())
	}
	kinds := reg.Kinds()
	if kinds[0] != KindButton || kinds[len(kinds)-1] != KindCarousel {
		t.Fatalf("unexpected registry bounds: first=%s last=%s", kinds[0], kinds[len(kinds)-1])
	}
	if reg.Position(KindButton) >= reg.Position(KindLink) {
		t.Fatalf("Button must precede Link")
	}
	if reg.Position("Nope") != -1 {
		t.Fatalf("unknown kind should report -1")
	}
}

func TestBuiltin_ResizableKinds(t *testing.T) {
	want := []string{
		KindButton, KindTextField, KindCheckbox, KindRadioButton,
		KindDropdown, KindLabel, KindSlider, KindProgressBar,
	}
	var got []string
	for _, entry := range Builtin().Entries() {
		if entry.Resizable {
			got = append(got, entry.Kind)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resizable kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	entry := Entry{Kind: "Rating", Fields: []Field{{Name: "stars", Type: FieldInteger}}}
	_, err := NewRegistry(entry, entry)
	if !errors.Is(err, ErrDuplicateKind) {
		t.Fatalf("expected ErrDuplicateKind, got %v", err)
	}
	if _, err := Builtin().With(Entry{Kind: KindButton, Fields: entry.Fields}); !errors.Is(err, ErrDuplicateKind) {
		t.Fatalf("expected builtin collision to fail, got %v", err)
	}
}

func TestRegistry_WithLeavesReceiverUntouched(t *testing.T) {
	base := Builtin()
	extended, err := base.With(Entry{Kind: "Rating", Fields: []Field{{Name: "stars", Type: FieldInteger}}})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if extended.Len() != base.Len()+1 {
		t.Fatalf("expected one more kind, got %d vs %d", extended.Len(), base.Len())
	}
	if _, ok := base.Lookup("Rating"); ok {
		t.Fatalf("base registry must not gain the new kind")
	}
	if extended.Position("Rating") != base.Len() {
		t.Fatalf("new kind should be appended last")
	}
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	entry, ok := Builtin().Lookup(KindButton)
	if !ok {
		t.Fatalf("Button not registered")
	}
	entry.Fields[0].Name = "mutated"

	again, _ := Builtin().Lookup(KindButton)
	if again.Fields[0].Name != "text" {
		t.Fatalf("registry entry was mutated through Lookup: %q", again.Fields[0].Name)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var reg *Registry
	if reg.Len() != 0 || reg.Kinds() != nil || reg.Entries() != nil {
		t.Fatalf("nil registry should be empty")
	}
	if _, ok := reg.Lookup(KindButton); ok {
		t.Fatalf("nil registry lookup should miss")
	}
}

func TestEntry_Validate(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"missing kind", Entry{Fields: []Field{{Name: "a", Type: FieldString}}}, ErrInvalidEntry},
		{"bad kind", Entry{Kind: "Two Words", Fields: []Field{{Name: "a", Type: FieldString}}}, ErrInvalidEntry},
		{"no fields", Entry{Kind: "Empty"}, ErrInvalidEntry},
		{"repeated field", Entry{Kind: "X", Fields: []Field{{Name: "a", Type: FieldString}, {Name: "a", Type: FieldString}}}, ErrInvalidEntry},
		{"unknown type", Entry{Kind: "X", Fields: []Field{{Name: "a", Type: "float"}}}, ErrUnknownFieldType},
		{"undeclared identity", Entry{Kind: "X", Fields: []Field{{Name: "a", Type: FieldString}}, Identity: Identity{Field: "b"}}, ErrInvalidEntry},
		{"resizable without size", Entry{Kind: "X", Resizable: true, Fields: []Field{{Name: "a", Type: FieldString}}}, ErrInvalidEntry},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.entry.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFieldType_List(t *testing.T) {
	for _, ft := range []FieldType{FieldStringList, FieldPairList, FieldRowMatrix} {
		if !ft.List() {
			t.Fatalf("%s should be a list type", ft)
		}
	}
	if FieldString.List() || FieldInteger.List() {
		t.Fatalf("scalar types must not be list types")
	}
}
