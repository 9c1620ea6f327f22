package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

// LoadCatalog reads a JSON/YAML catalog fixture. Testing helpers fail the
// test on error to keep table tests concise.
func LoadCatalog(t *testing.T, path string) *catalog.Catalog {
	t.Helper()

	cat, err := LoadCatalogFromPath(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

// LoadCatalogFromPath returns a catalog without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadCatalogFromPath(path string) (*catalog.Catalog, error) {
	if path == "" {
		return nil, errors.New("testsupport: catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read catalog: %w", err)
	}
	cat, err := catalog.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse catalog: %w", err)
	}
	return cat, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
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

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput executes a function that writes to an io.Writer and returns
// what was written, failing the test on error.
func CaptureOutput(t *testing.T, write func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		t.Fatalf("capture output: %v", err)
	}
	return buf.String()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// AssertGolden compares got with the golden file at path, rewriting the file
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// ExpandFixture runs expand over the template stored at templatePath and
// checks the result against goldenPath.
func ExpandFixture(t *testing.T, templatePath, goldenPath string, expand func(template string) (string, error)) {
	t.Helper()

	template := MustReadGoldenString(t, templatePath)
	got, err := expand(template)
	if err != nil {
		t.Fatalf("expand %s: %v", filepath.Base(templatePath), err)
	}
	AssertGolden(t, goldenPath, got)
}
