package registry

import (
	"errors"
	"fmt"
)

// ErrNoPluginRegion indicates the document has no <ActPlugins> section.
var ErrNoPluginRegion = errors.New("no <ActPlugins> section found")

// MissingDependencyError indicates a plugin the target depends on is not
// listed in the registry.
type MissingDependencyError struct {
	Plugin      string
	Description string
}

func (e *MissingDependencyError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("required plugin %s (%s) is not installed", e.Plugin, e.Description)
	}
	return fmt.Sprintf("required plugin %s is not installed", e.Plugin)
}

// Suggestion returns an actionable hint for the operator.
func (e *MissingDependencyError) Suggestion() string {
	return fmt.Sprintf("Install %s in ACT and restart ACT once so it is registered, then run again.", e.Plugin)
}

// UnsupportedDocumentError indicates the host document carries no plugin
// registry this tool understands.
type UnsupportedDocumentError struct {
	Path string
}

func (e *UnsupportedDocumentError) Error() string {
	if e.Path == "" {
		return ErrNoPluginRegion.Error()
	}
	return fmt.Sprintf("%s in %s", ErrNoPluginRegion.Error(), e.Path)
}

func (e *UnsupportedDocumentError) Unwrap() error {
	return ErrNoPluginRegion
}

// Suggestion returns an actionable hint for the operator.
func (e *UnsupportedDocumentError) Suggestion() string {
	return "Start and close ACT once so it writes its plugin list, and check that the selected profile matches your ACT installation."
}

// DocumentNotFoundError indicates the host document could not be read.
type DocumentNotFoundError struct {
	Path string
	Err  error
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("configuration file %s could not be read: %v", e.Path, e.Err)
}

func (e *DocumentNotFoundError) Unwrap() error {
	return e.Err
}

// Suggestion returns an actionable hint for the operator.
func (e *DocumentNotFoundError) Suggestion() string {
	return "You may have selected the wrong ACT profile, or the tool is not placed in the ACT root folder."
}

// TransferError indicates a remote fetch failed.
type TransferError struct {
	URL  string
	File string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("downloading %s from %s: %v", e.File, e.URL, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates a local write failed.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsMissingDependency returns true if the error is a missing dependency.
func IsMissingDependency(err error) bool {
	var depErr *MissingDependencyError
	return errors.As(err, &depErr)
}

// IsUnsupportedDocument returns true if the document has no plugin registry.
func IsUnsupportedDocument(err error) bool {
	var docErr *UnsupportedDocumentError
	return errors.As(err, &docErr)
}

// IsDocumentNotFound returns true if the host document could not be read.
func IsDocumentNotFound(err error) bool {
	var nfErr *DocumentNotFoundError
	return errors.As(err, &nfErr)
}

// IsTransfer returns true if the error is a failed remote fetch.
func IsTransfer(err error) bool {
	var tErr *TransferError
	return errors.As(err, &tErr)
}

// IsPersistence returns true if the error is a failed local write.
func IsPersistence(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}
