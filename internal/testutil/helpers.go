// Package testutil provides fixtures and helpers shared by the installer's
// tests.
package testutil

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// WriteTempFile writes content to a file in the specified directory.
func WriteTempFile(t testing.TB, dir, filename, content string) string {
	t.Helper()

	p := filepath.Join(dir, filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644), "failed to write temp file: %s", filename)
	return p
}

// ReadFile returns the content of path as a string.
func ReadFile(t testing.TB, p string) string {
	t.Helper()

	data, err := os.ReadFile(p)
	require.NoError(t, err, "failed to read %s", p)
	return string(data)
}

// LoadFixture loads a file from the embedded fixtures directory.
func LoadFixture(t testing.TB, name string) string {
	t.Helper()

	content, err := fixturesFS.ReadFile(path.Join("fixtures", name))
	require.NoError(t, err, "failed to load fixture: %s", name)
	return string(content)
}

// ChangeDir changes to a directory for the duration of the test.
// Tests using it must not run in parallel.
func ChangeDir(t *testing.T, dir string) {
	t.Helper()

	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(original)
	})
}
