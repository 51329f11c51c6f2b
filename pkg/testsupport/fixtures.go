// Package testsupport holds fixture and golden-file helpers shared by the
// package test suites.
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

	"github.com/stormkeep/sheetgen/pkg/spell"
)

// MustLoadViewModel loads a JSON fixture into a spell view-model.
func MustLoadViewModel(t *testing.T, path string) spell.ViewModel {
	t.Helper()

	vm, err := LoadViewModel(path)
	if err != nil {
		t.Fatalf("load view model: %v", err)
	}
	return vm
}

// LoadViewModel reads a JSON fixture into a view-model, returning an error
// for callers managing setup outside of *testing.T.
func LoadViewModel(path string) (spell.ViewModel, error) {
	if path == "" {
		return spell.ViewModel{}, errors.New("testsupport: view model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return spell.ViewModel{}, fmt.Errorf("testsupport: read view model: %w", err)
	}
	return spell.ParseViewModel(data)
}

// MustLoadLookups loads a YAML lookup bundle fixture.
func MustLoadLookups(t *testing.T, path string) spell.Lookups {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read lookups: %v", err)
	}
	lookups, err := spell.ParseLookups(data)
	if err != nil {
		t.Fatalf("parse lookups: %v", err)
	}
	return lookups
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
