package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{`C:\Users\Player\AppData\Roaming\Advanced Combat Tracker`, "/mnt/c/Users/Player/AppData/Roaming/Advanced Combat Tracker", false},
		{"D:/Games/ACT/Plugins/", "/mnt/d/Games/ACT/Plugins", false},
		{`E:\`, "/mnt/e", false},
		{"/already/unix", "/already/unix", false},
		{"", "", true},
		{`relative\path`, "", true},
	}
	for _, tt := range tests {
		got, err := ToWSL(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ToWSL(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestToWindows(t *testing.T) {
	t.Parallel()

	got, err := ToWindows("/mnt/c/Users/Player/ACT")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\Player\ACT`, got)

	got, err = ToWindows("/mnt/d")
	require.NoError(t, err)
	assert.Equal(t, `D:\`, got)

	_, err = ToWindows("/home/player")
	assert.Error(t, err)
}

func TestIsWindowsPath(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWindowsPath(`C:\ACT`))
	assert.True(t, IsWindowsPath("c:/ACT"))
	assert.False(t, IsWindowsPath("/mnt/c/ACT"))
	assert.False(t, IsWindowsPath("ACT"))
}

func TestIsWSLMountPath(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWSLMountPath("/mnt/c"))
	assert.True(t, IsWSLMountPath("/mnt/c/Users"))
	assert.False(t, IsWSLMountPath("/mnt/wsl/x"))
	assert.False(t, IsWSLMountPath("/mnt/"))
	assert.False(t, IsWSLMountPath("/home"))
}

func TestPlatform_LocalPath(t *testing.T) {
	t.Parallel()

	wsl := New(OSLinux, "amd64", EnvWSL)
	native := New(OSWindows, "amd64", EnvNative)

	assert.Equal(t, "/mnt/c/ACT/Plugins", wsl.LocalPath(`C:\ACT\Plugins`))
	assert.Equal(t, "/home/act", wsl.LocalPath("/home/act"))
	assert.Equal(t, `C:\ACT\Plugins`, native.LocalPath(`C:\ACT\Plugins`))
}
