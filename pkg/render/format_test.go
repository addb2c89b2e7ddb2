package render

import (
	"testing"

	"github.com/goliatone/go-widgetdsl/pkg/model"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{12, "12"},
		{2.5, "2.5"},
		{100.0, "100"},
		{[]string{"a", "b"}, "a, b"},
		{[]model.Pair{{Label: "Home", Target: "/"}, {Label: "Docs", Target: "docs"}}, "Home//, Docs/docs"},
		{[][]string{{"a", "b"}, {"c"}}, "a, b; c"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Fatalf("FormatValue(%#v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}
