package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileExists asserts that a regular file exists at path.
func AssertFileExists(t testing.TB, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		assert.Fail(t, "file does not exist", "expected file to exist: %s", path)
		return
	}
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "expected file but got directory: %s", path)
}

// AssertFileNotExists asserts that nothing exists at path.
func AssertFileNotExists(t testing.TB, path string) {
	t.Helper()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected file to not exist: %s", path)
}

// AssertFileEquals asserts that path holds exactly expected, byte for byte.
func AssertFileEquals(t testing.TB, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)
	assert.Equal(t, expected, string(content))
}

// AssertPluginOrder asserts that the last <ActPlugins> list of doc names
// exactly the given file names, in order.
func AssertPluginOrder(t testing.TB, doc string, fileNames ...string) {
	t.Helper()

	assert.Equal(t, fileNames, PluginFileNames(doc))
}

// PluginFileNames returns the file names of the Path attributes inside the
// last <ActPlugins> list of doc.
func PluginFileNames(doc string) []string {
	start := strings.LastIndex(doc, "<ActPlugins>")
	if start < 0 {
		return nil
	}
	region := doc[start:]
	if end := strings.Index(region, "</ActPlugins>"); end >= 0 {
		region = region[:end]
	}

	names := []string{}
	for {
		i := strings.Index(region, `Path="`)
		if i < 0 {
			return names
		}
		region = region[i+len(`Path="`):]
		j := strings.IndexByte(region, '"')
		if j < 0 {
			return names
		}
		p := region[:j]
		if k := strings.LastIndexAny(p, `\/`); k >= 0 {
			p = p[k+1:]
		}
		names = append(names, p)
		region = region[j:]
	}
}
