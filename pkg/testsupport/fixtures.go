package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// MustReadSource reads a DSL fixture from disk.
func MustReadSource(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	return string(data)
}

// MustLoadDocument loads a JSON document fixture.
func MustLoadDocument(t *testing.T, path string) model.Document {
	t.Helper()

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocument reads a JSON fixture into a Document, returning an error for
// callers managing setup outside of *testing.T. Attribute values decode into
// their JSON shapes (float64, []any), so compare fixtures with CompareJSON
// rather than cmp on compiled documents.
func LoadDocument(path string) (model.Document, error) {
	if path == "" {
		return model.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	var out model.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return model.Document{}, fmt.Errorf("testsupport: unmarshal document: %w", err)
	}
	return out, nil
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, append(payload, '\n'))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CompareJSON decodes both payloads into generic values and diffs them, so
// formatting and key order do not matter. Invalid JSON on either side is
// reported as a diff.
func CompareJSON(want, got []byte) string {
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return fmt.Sprintf("want is not valid JSON: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return fmt.Sprintf("got is not valid JSON: %v\n%s", err, got)
	}
	return cmp.Diff(wantValue, gotValue)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
