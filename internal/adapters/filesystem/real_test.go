package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MnFeN/Triggernometry/internal/testutil"
	"github.com/MnFeN/Triggernometry/internal/testutil/mocks"
)

func TestRealFileSystem_ReadWrite(t *testing.T) {
	t.Parallel()

	fs := NewRealFileSystem()
	dir := t.TempDir()
	path := filepath.Join(dir, "Advanced Combat Tracker.config.xml")

	doc := "\ufeff" + testutil.NewConfigBuilder().WithDependencies().Build()
	require.NoError(t, fs.WriteFile(path, []byte(doc), 0o644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data), "bytes, including the BOM, are kept")

	require.NoError(t, fs.WriteFile(path, []byte("short"), 0o644))
	testutil.AssertFileEquals(t, path, "short")
}

func TestRealFileSystem_Dirs(t *testing.T) {
	t.Parallel()

	fs := NewRealFileSystem()
	dir := filepath.Join(t.TempDir(), "ACT", "Plugins")

	assert.False(t, fs.Exists(dir))
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	assert.True(t, fs.Exists(dir))
	assert.True(t, fs.IsDir(dir))

	file := testutil.WriteTempFile(t, dir, "Triggernometry.dll", "bin")
	assert.True(t, fs.Exists(file))
	assert.False(t, fs.IsDir(file))

	require.NoError(t, fs.Remove(file))
	testutil.AssertFileNotExists(t, file)
	assert.True(t, os.IsNotExist(fs.Remove(file)))
}

func TestRealFileSystem_ReadMissing(t *testing.T) {
	t.Parallel()

	_, err := NewRealFileSystem().ReadFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.True(t, os.IsNotExist(err))
}

func TestMappedFileSystem(t *testing.T) {
	t.Parallel()

	inner := mocks.NewFileSystem()
	inner.AddFile("/mnt/c/ACT/act.config.xml", "<Config />")
	toLocal := func(p string) string {
		if strings.HasPrefix(p, `C:\`) {
			return "/mnt/c/" + strings.ReplaceAll(p[3:], `\`, "/")
		}
		return p
	}
	fs := NewMappedFileSystem(inner, toLocal)

	data, err := fs.ReadFile(`C:\ACT\act.config.xml`)
	require.NoError(t, err)
	assert.Equal(t, "<Config />", string(data))

	require.NoError(t, fs.MkdirAll(`C:\ACT\Plugins`, 0o755))
	assert.True(t, fs.IsDir(`C:\ACT\Plugins`))
	assert.True(t, inner.IsDir("/mnt/c/ACT/Plugins"))

	require.NoError(t, fs.WriteFile(`C:\ACT\Plugins\a.dll`, []byte("a"), 0o644))
	assert.True(t, fs.Exists(`C:\ACT\Plugins\a.dll`))
	assert.Equal(t, []string{"/mnt/c/ACT/Plugins/a.dll"}, inner.Writes())

	require.NoError(t, fs.Remove(`C:\ACT\Plugins\a.dll`))
	assert.Equal(t, []string{"/mnt/c/ACT/Plugins/a.dll"}, inner.Removals())
}
