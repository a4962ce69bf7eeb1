// Package testsupport holds golden-file helpers shared by renderer tests.
package testsupport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// UpdateGoldensEnv names the environment variable that makes golden helpers
// rewrite their files instead of comparing.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustLoadFeatures reads a features document fixture.
func MustLoadFeatures(t *testing.T, path string) feature.List {
	t.Helper()

	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	list, err := feature.LoadFS(os.DirFS(dir), file)
	if err != nil {
		t.Fatalf("load features: %v", err)
	}
	return list
}

func mustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// writeMaybeGolden updates a golden file when UPDATE_GOLDENS is set and
// reports whether it did.
func writeMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
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

// AssertGolden compares got with the golden file at path, rewriting it when
// UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if writeMaybeGolden(t, path, got) {
		return
	}
	want := mustReadGolden(t, path)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("output mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// CaptureOutput runs render against a buffer and returns both the returned
// string and what was written, so tests can assert they match.
func CaptureOutput(t *testing.T, render func(*bytes.Buffer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
