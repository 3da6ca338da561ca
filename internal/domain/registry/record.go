// Package registry models the plugin list ACT keeps inside its configuration
// document: parsing it out of the surrounding XML, looking plugins up by name,
// editing the ordered sequence, and writing it back without touching any
// other part of the document.
package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

const (
	enabledTrue  = "True"
	enabledFalse = "False"

	// DefaultEntryIndent precedes each <Plugin> element ACT writes.
	DefaultEntryIndent = "\n        "
	// DefaultCloseIndent precedes the closing </ActPlugins> marker.
	DefaultCloseIndent = "\n    "
)

var (
	attrEscaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	attrUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
)

// Record is one <Plugin Enabled="..." Path="..." /> entry.
type Record struct {
	enabled     bool
	installPath string
	folder      string
	sep         string
	fileName    string

	// indent is the whitespace written before the element.
	indent    string
	indentSet bool
	// raw is the element exactly as it was read; cleared on mutation.
	raw string
}

// NewRecord creates a record for the plugin binary at installPath.
func NewRecord(enabled bool, installPath string) *Record {
	r := &Record{enabled: enabled}
	r.setPath(installPath)
	return r
}

// NewRecordFromString creates a record from the textual Enabled value used
// in the document.
func NewRecordFromString(enabled, installPath string) *Record {
	return NewRecord(ParseEnabled(enabled), installPath)
}

// ParseEnabled reports whether s spells "true", ignoring case and
// surrounding whitespace. Anything else is disabled.
func ParseEnabled(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// ParseRecord reads the Enabled and Path attributes of a single <Plugin />
// element. A missing Enabled attribute means disabled; a missing Path yields
// a record whose Valid method reports false.
func ParseRecord(element string) *Record {
	enabled, _ := attribute(element, "Enabled")
	path, _ := attribute(element, "Path")
	r := NewRecordFromString(enabled, attrUnescaper.Replace(path))
	r.raw = element
	return r
}

// attribute returns the first name="value" occurrence in element.
func attribute(element, name string) (string, bool) {
	prefix := name + `="`
	i := strings.Index(element, prefix)
	if i < 0 {
		return "", false
	}
	rest := element[i+len(prefix):]
	j := strings.IndexByte(rest, '"')
	if j < 0 {
		return "", false
	}
	value := rest[:j]
	if strings.ContainsRune(value, '\n') {
		return "", false
	}
	return value, true
}

// Enabled reports whether ACT loads the plugin.
func (r *Record) Enabled() bool {
	return r.enabled
}

// EnabledString returns the canonical "True"/"False" form.
func (r *Record) EnabledString() string {
	if r.enabled {
		return enabledTrue
	}
	return enabledFalse
}

// SetEnabled changes the enabled flag.
func (r *Record) SetEnabled(enabled bool) {
	if r.enabled == enabled {
		return
	}
	r.enabled = enabled
	r.raw = ""
}

// InstallPath returns the full path of the plugin binary.
func (r *Record) InstallPath() string {
	return r.installPath
}

// SetInstallPath points the record at a new binary and recomputes Folder
// and FileName.
func (r *Record) SetInstallPath(path string) {
	if r.installPath == path {
		return
	}
	r.setPath(path)
	r.raw = ""
}

func (r *Record) setPath(path string) {
	r.installPath = path
	i := strings.LastIndexAny(path, `\/`)
	if i < 0 {
		r.folder, r.sep, r.fileName = "", "", path
		return
	}
	r.folder, r.sep, r.fileName = path[:i], path[i:i+1], path[i+1:]
}

// Folder returns the install path without its final component.
func (r *Record) Folder() string {
	return r.folder
}

// FileName returns the final component of the install path.
func (r *Record) FileName() string {
	return r.fileName
}

// Valid reports whether the record names a usable file.
func (r *Record) Valid() bool {
	return r.fileName != ""
}

// SiblingPath returns the path of name inside the record's folder, using the
// same separator as the install path.
func (r *Record) SiblingPath(name string) string {
	if r.sep == "" {
		return name
	}
	return r.folder + r.sep + name
}

// Serialize renders the element together with the whitespace that precedes
// it. A record that has not been modified since it was parsed renders its
// original text.
func (r *Record) Serialize() string {
	indent := DefaultEntryIndent
	if r.indentSet {
		indent = r.indent
	}
	return indent + r.element()
}

func (r *Record) element() string {
	if r.raw != "" {
		return r.raw
	}
	return fmt.Sprintf(`<Plugin Enabled="%s" Path="%s" />`, r.EnabledString(), attrEscaper.Replace(r.installPath))
}

func (r *Record) setIndent(indent string) {
	r.indent = indent
	r.indentSet = true
}

// String implements fmt.Stringer.
func (r *Record) String() string {
	return r.element()
}

// Delete removes the plugin binary from storage. It never fails: a missing
// file or a permission problem leaves the file in place.
func (r *Record) Delete(fs ports.FileSystem) {
	if r.installPath == "" {
		return
	}
	_ = fs.Remove(r.installPath)
}

// Update downloads remoteURL and stores it next to the plugin binary as
// fileName, or over the binary itself when fileName is empty. Fetch failures
// are returned as *TransferError and write failures as *PersistenceError.
func (r *Record) Update(ctx context.Context, fetcher ports.Fetcher, fs ports.FileSystem, remoteURL, fileName string) error {
	target := r.installPath
	name := r.fileName
	if fileName != "" {
		target = r.SiblingPath(fileName)
		name = fileName
	}

	data, err := fetcher.Fetch(ctx, remoteURL)
	if err != nil {
		return &TransferError{URL: remoteURL, File: name, Err: err}
	}

	if r.folder != "" && !fs.IsDir(r.folder) {
		if err := fs.MkdirAll(r.folder, 0o755); err != nil {
			return &PersistenceError{Path: r.folder, Err: err}
		}
	}
	if err := fs.WriteFile(target, data, 0o644); err != nil {
		return &PersistenceError{Path: target, Err: err}
	}
	return nil
}

// JoinPath joins dir and name with the separator dir already uses, so that
// Windows paths stay Windows paths on every host.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	sep := string(filepath.Separator)
	switch {
	case strings.Contains(dir, `\`):
		sep = `\`
	case strings.Contains(dir, "/"):
		sep = "/"
	}
	return strings.TrimRight(dir, `\/`) + sep + name
}

var _ fmt.Stringer = (*Record)(nil)
