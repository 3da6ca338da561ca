package mocks

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// FileSystem is a thread-safe test double for ports.FileSystem.
type FileSystem struct {
	mu           sync.RWMutex
	files        map[string][]byte
	dirs         map[string]bool
	writeErrors  map[string]error
	removeErrors map[string]error
	mkdirErrors  map[string]error
	writes       []string
	removals     []string
}

// NewFileSystem creates a new FileSystem mock.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:        make(map[string][]byte),
		dirs:         make(map[string]bool),
		writeErrors:  make(map[string]error),
		removeErrors: make(map[string]error),
		mkdirErrors:  make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem.
func (fs *FileSystem) AddFile(path string, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = []byte(content)
}

// AddDir adds a directory to the mock filesystem.
func (fs *FileSystem) AddDir(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.dirs[path] = true
}

// FailWrite makes every write to path return err.
func (fs *FileSystem) FailWrite(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.writeErrors[path] = err
}

// FailRemove makes removing path return err.
func (fs *FileSystem) FailRemove(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.removeErrors[path] = err
}

// FailMkdir makes creating path return err.
func (fs *FileSystem) FailMkdir(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.mkdirErrors[path] = err
}

// ReadFile reads a file from the mock filesystem.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if content, ok := fs.files[path]; ok {
		out := make([]byte, len(content))
		copy(out, content)
		return out, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
}

// WriteFile writes a file to the mock filesystem.
func (fs *FileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err, ok := fs.writeErrors[path]; ok {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	fs.files[path] = stored
	fs.writes = append(fs.writes, path)
	return nil
}

// Exists checks if a file or directory exists in the mock filesystem.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, isFile := fs.files[path]
	return isFile || fs.dirs[path]
}

// IsDir checks if a path is a directory in the mock filesystem.
func (fs *FileSystem) IsDir(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.dirs[path]
}

// Remove deletes a file or directory from the mock filesystem.
func (fs *FileSystem) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err, ok := fs.removeErrors[path]; ok {
		return err
	}
	_, isFile := fs.files[path]
	if !isFile && !fs.dirs[path] {
		return fmt.Errorf("remove %s: %w", path, os.ErrNotExist)
	}
	delete(fs.files, path)
	delete(fs.dirs, path)
	fs.removals = append(fs.removals, path)
	return nil
}

// MkdirAll records path as a directory.
func (fs *FileSystem) MkdirAll(path string, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err, ok := fs.mkdirErrors[path]; ok {
		return err
	}
	fs.dirs[path] = true
	return nil
}

// Content returns the stored content of path and whether it exists.
func (fs *FileSystem) Content(path string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	content, ok := fs.files[path]
	return string(content), ok
}

// Writes returns every successfully written path in order.
func (fs *FileSystem) Writes() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]string, len(fs.writes))
	copy(out, fs.writes)
	return out
}

// Removals returns every successfully removed path in order.
func (fs *FileSystem) Removals() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]string, len(fs.removals))
	copy(out, fs.removals)
	return out
}

// Files returns the sorted paths of all stored files.
func (fs *FileSystem) Files() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset clears all files, directories, injected errors, and history.
func (fs *FileSystem) Reset() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files = make(map[string][]byte)
	fs.dirs = make(map[string]bool)
	fs.writeErrors = make(map[string]error)
	fs.removeErrors = make(map[string]error)
	fs.mkdirErrors = make(map[string]error)
	fs.writes = nil
	fs.removals = nil
}

// Ensure FileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*FileSystem)(nil)
