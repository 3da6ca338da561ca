package filesystem

import (
	"os"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// MappedFileSystem rewrites every path before passing it on. It lets the
// installer keep paths in the form ACT stores them (C:\...) while the
// process reaches them somewhere else, such as /mnt/c under WSL.
type MappedFileSystem struct {
	inner ports.FileSystem
	mapFn func(string) string
}

// NewMappedFileSystem wraps inner so that each path goes through mapFn.
func NewMappedFileSystem(inner ports.FileSystem, mapFn func(string) string) *MappedFileSystem {
	return &MappedFileSystem{inner: inner, mapFn: mapFn}
}

// ReadFile reads the mapped path.
func (fs *MappedFileSystem) ReadFile(path string) ([]byte, error) {
	return fs.inner.ReadFile(fs.mapFn(path))
}

// WriteFile writes the mapped path.
func (fs *MappedFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return fs.inner.WriteFile(fs.mapFn(path), data, perm)
}

// Exists checks the mapped path.
func (fs *MappedFileSystem) Exists(path string) bool {
	return fs.inner.Exists(fs.mapFn(path))
}

// IsDir checks the mapped path.
func (fs *MappedFileSystem) IsDir(path string) bool {
	return fs.inner.IsDir(fs.mapFn(path))
}

// Remove removes the mapped path.
func (fs *MappedFileSystem) Remove(path string) error {
	return fs.inner.Remove(fs.mapFn(path))
}

// MkdirAll creates the mapped path.
func (fs *MappedFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return fs.inner.MkdirAll(fs.mapFn(path), perm)
}

var _ ports.FileSystem = (*MappedFileSystem)(nil)
