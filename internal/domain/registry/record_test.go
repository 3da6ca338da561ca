package registry

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MnFeN/Triggernometry/internal/testutil/mocks"
)

func TestParseEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"True", true},
		{"true", true},
		{"  TRUE ", true},
		{"False", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseEnabled(tt.input), "ParseEnabled(%q)", tt.input)
	}
}

func TestNewRecord_SplitsPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		wantFolder string
		wantFile   string
	}{
		{`C:\ACT\Plugins\Triggernometry.dll`, `C:\ACT\Plugins`, "Triggernometry.dll"},
		{"/home/act/plugins/PostNamazu.dll", "/home/act/plugins", "PostNamazu.dll"},
		{`C:\ACT/Plugins\mixed.dll`, `C:\ACT/Plugins`, "mixed.dll"},
		{"bare.dll", "", "bare.dll"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			r := NewRecord(true, tt.path)
			assert.Equal(t, tt.wantFolder, r.Folder())
			assert.Equal(t, tt.wantFile, r.FileName())
			assert.True(t, r.Valid())
		})
	}
}

func TestRecord_PathInvariant(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9_ .]{1,10}`), 0, 4).Draw(t, "segments")
		sep := rapid.SampledFrom([]string{`\`, "/"}).Draw(t, "sep")
		name := rapid.StringMatching(`[A-Za-z0-9_]{1,10}\.dll`).Draw(t, "name")

		path := strings.Join(append(segments, name), sep)
		r := NewRecord(true, path)

		assert.Equal(t, name, r.FileName())
		if len(segments) == 0 {
			assert.Equal(t, path, r.FileName())
			return
		}
		assert.Equal(t, path, r.Folder()+sep+r.FileName())
	})
}

func TestRecord_SetInstallPathRecomputes(t *testing.T) {
	t.Parallel()

	r := ParseRecord(`<Plugin Enabled="True" Path="C:\Old\a.dll" />`)
	r.SetInstallPath(`D:\New\b.dll`)

	assert.Equal(t, `D:\New`, r.Folder())
	assert.Equal(t, "b.dll", r.FileName())
	assert.Equal(t, `<Plugin Enabled="True" Path="D:\New\b.dll" />`, r.String())
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	t.Run("attributes", func(t *testing.T) {
		t.Parallel()

		r := ParseRecord(`<Plugin Enabled="true" Path="C:\P\FFXIV_ACT_Plugin.dll" />`)
		assert.True(t, r.Enabled())
		assert.Equal(t, `C:\P\FFXIV_ACT_Plugin.dll`, r.InstallPath())
		assert.Equal(t, "True", r.EnabledString())
	})

	t.Run("attribute order does not matter", func(t *testing.T) {
		t.Parallel()

		r := ParseRecord(`<Plugin Path="C:\P\x.dll" Enabled="False" />`)
		assert.False(t, r.Enabled())
		assert.Equal(t, "x.dll", r.FileName())
	})

	t.Run("missing enabled is disabled", func(t *testing.T) {
		t.Parallel()

		r := ParseRecord(`<Plugin Path="C:\P\x.dll" />`)
		assert.False(t, r.Enabled())
	})

	t.Run("missing path is invalid", func(t *testing.T) {
		t.Parallel()

		r := ParseRecord(`<Plugin Enabled="True" />`)
		assert.Empty(t, r.InstallPath())
		assert.False(t, r.Valid())
	})

	t.Run("entities are decoded and re-encoded", func(t *testing.T) {
		t.Parallel()

		r := ParseRecord(`<Plugin Enabled="True" Path="C:\Tom &amp; Jerry\x.dll" />`)
		assert.Equal(t, `C:\Tom & Jerry\x.dll`, r.InstallPath())

		r.SetEnabled(false)
		assert.Equal(t, `<Plugin Enabled="False" Path="C:\Tom &amp; Jerry\x.dll" />`, r.String())
	})
}

func TestRecord_SerializeKeepsSourceText(t *testing.T) {
	t.Parallel()

	element := `<Plugin Enabled="true"  Path="C:\P\x.dll"/>`
	r := ParseRecord(element)
	r.setIndent("\n\t")

	assert.Equal(t, "\n\t"+element, r.Serialize())

	r.SetEnabled(true)
	assert.Equal(t, "\n\t"+element, r.Serialize(), "setting the same value is not a change")

	r.SetEnabled(false)
	assert.Equal(t, "\n\t"+`<Plugin Enabled="False" Path="C:\P\x.dll" />`, r.Serialize())
}

func TestRecord_SerializeDefaultIndent(t *testing.T) {
	t.Parallel()

	r := NewRecordFromString("TRUE", `C:\P\Triggernometry.dll`)
	assert.Equal(t, DefaultEntryIndent+`<Plugin Enabled="True" Path="C:\P\Triggernometry.dll" />`, r.Serialize())
}

func TestRecord_SiblingPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `C:\P\zh-CN.triglations.xml`, NewRecord(true, `C:\P\Triggernometry.dll`).SiblingPath("zh-CN.triglations.xml"))
	assert.Equal(t, "/p/x.xml", NewRecord(true, "/p/a.dll").SiblingPath("x.xml"))
	assert.Equal(t, "x.xml", NewRecord(true, "a.dll").SiblingPath("x.xml"))
}

func TestRecord_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the file", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddFile(`C:\P\MlmTriggernometry.dll`, "old")

		NewRecord(true, `C:\P\MlmTriggernometry.dll`).Delete(fs)
		assert.False(t, fs.Exists(`C:\P\MlmTriggernometry.dll`))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		assert.NotPanics(t, func() { NewRecord(true, `C:\P\gone.dll`).Delete(fs) })
	})

	t.Run("permission failure is swallowed", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddFile(`C:\P\locked.dll`, "old")
		fs.FailRemove(`C:\P\locked.dll`, errors.New("access denied"))

		NewRecord(true, `C:\P\locked.dll`).Delete(fs)
		assert.True(t, fs.Exists(`C:\P\locked.dll`))
	})
}

func TestRecord_Update(t *testing.T) {
	t.Parallel()

	const base = "https://example.com/release/"
	ctx := context.Background()

	t.Run("overwrites own file", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddDir(`C:\P`)
		fs.AddFile(`C:\P\Triggernometry.dll`, "v1")
		fetcher := mocks.NewFetcher()
		fetcher.AddResponse(base+"Triggernometry.dll", "v2")

		err := NewRecord(true, `C:\P\Triggernometry.dll`).Update(ctx, fetcher, fs, base+"Triggernometry.dll", "")
		require.NoError(t, err)

		content, _ := fs.Content(`C:\P\Triggernometry.dll`)
		assert.Equal(t, "v2", content)
	})

	t.Run("writes sibling file and creates folder", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fetcher := mocks.NewFetcher()
		fetcher.AddResponse(base+"zh-CN.triglations.xml", "<xml/>")

		err := NewRecord(true, `C:\P\Triggernometry.dll`).Update(ctx, fetcher, fs, base+"zh-CN.triglations.xml", "zh-CN.triglations.xml")
		require.NoError(t, err)

		assert.True(t, fs.IsDir(`C:\P`))
		content, ok := fs.Content(`C:\P\zh-CN.triglations.xml`)
		assert.True(t, ok)
		assert.Equal(t, "<xml/>", content)
	})

	t.Run("fetch failure is a transfer error", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fetcher := mocks.NewFetcher()
		fetcher.AddError(base+"PostNamazuCN.dll", errors.New("connection reset"))

		err := NewRecord(true, `C:\P\PostNamazu.dll`).Update(ctx, fetcher, fs, base+"PostNamazuCN.dll", "")
		require.Error(t, err)
		assert.True(t, IsTransfer(err))
		assert.False(t, IsPersistence(err))
		assert.Empty(t, fs.Writes())

		var tErr *TransferError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, "PostNamazu.dll", tErr.File)
	})

	t.Run("write failure is a persistence error", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddDir(`C:\P`)
		denied := errors.New("access denied")
		fs.FailWrite(`C:\P\Triggernometry.dll`, denied)
		fetcher := mocks.NewFetcher()
		fetcher.AddResponse(base+"Triggernometry.dll", "v2")

		err := NewRecord(true, `C:\P\Triggernometry.dll`).Update(ctx, fetcher, fs, base+"Triggernometry.dll", "")
		assert.True(t, IsPersistence(err))
		assert.ErrorIs(t, err, denied)
	})

	t.Run("folder creation failure is a persistence error", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.FailMkdir(`C:\P`, errors.New("read-only volume"))
		fetcher := mocks.NewFetcher()
		fetcher.AddResponse(base+"a.dll", "bin")

		err := NewRecord(true, `C:\P\a.dll`).Update(ctx, fetcher, fs, base+"a.dll", "")
		var pErr *PersistenceError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, `C:\P`, pErr.Path)
	})
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		name string
		want string
	}{
		{`C:\ACT\Plugins`, "Triggernometry.dll", `C:\ACT\Plugins\Triggernometry.dll`},
		{`C:\ACT\Plugins\`, "a.dll", `C:\ACT\Plugins\a.dll`},
		{"/opt/act/", "a.dll", "/opt/act/a.dll"},
		{"", "a.dll", "a.dll"},
		{"rel", "a.dll", "rel" + string(filepath.Separator) + "a.dll"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.dir, tt.name), "JoinPath(%q, %q)", tt.dir, tt.name)
	}
}
