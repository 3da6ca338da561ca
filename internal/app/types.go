package app

import (
	"fmt"
	"strings"
)

// Secondary selects which build of the secondary plugin to install.
type Secondary int

const (
	// SecondarySkip leaves the secondary plugin alone.
	SecondarySkip Secondary = iota
	// SecondaryCN installs the build for the Chinese game client.
	SecondaryCN
	// SecondaryIntl installs the build for the international game client.
	SecondaryIntl
)

// String returns the flag spelling of s.
func (s Secondary) String() string {
	switch s {
	case SecondarySkip:
		return "skip"
	case SecondaryCN:
		return "cn"
	case SecondaryIntl:
		return "intl"
	default:
		return fmt.Sprintf("Secondary(%d)", int(s))
	}
}

// ParseSecondary converts a flag value into a Secondary choice.
func ParseSecondary(s string) (Secondary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip", "none", "no":
		return SecondarySkip, nil
	case "cn", "china", "chinese":
		return SecondaryCN, nil
	case "intl", "int", "international", "global":
		return SecondaryIntl, nil
	default:
		return SecondarySkip, fmt.Errorf("unknown PostNamazu variant %q (want skip, cn or intl)", s)
	}
}

// Request is one install run against an already selected profile.
type Request struct {
	// ConfigPath is the ACT configuration document to patch.
	ConfigPath string
	// PluginDir is where newly registered plugins are placed.
	PluginDir string
	Secondary Secondary
	// DryRun computes the new document without deleting, downloading or
	// writing anything.
	DryRun bool
}

// Validate checks that the request names the paths a run needs.
func (r Request) Validate() error {
	if strings.TrimSpace(r.ConfigPath) == "" {
		return fmt.Errorf("config path is required")
	}
	if strings.TrimSpace(r.PluginDir) == "" {
		return fmt.Errorf("plugin directory is required")
	}
	if r.Secondary < SecondarySkip || r.Secondary > SecondaryIntl {
		return fmt.Errorf("invalid secondary choice %v", r.Secondary)
	}
	return nil
}

// Update is one file download issued against a plugin record.
type Update struct {
	Plugin string
	URL    string
	Path   string
}

// Failure is an update that did not complete.
type Failure struct {
	Update
	Err error
}

// Result summarizes a run.
type Result struct {
	RunID string
	Phase Phase
	// Err is the error that moved the run to PhaseFailed.
	Err error

	// Document is the patched configuration text. In a dry run it is what
	// would have been written.
	Document string
	Written  []string

	Inserted []string
	Removed  []string

	// Planned lists every update the run issued or, in a dry run, would
	// have issued. Updates holds the ones that succeeded.
	Planned  []Update
	Updates  []Update
	Failures []Failure

	// LegacyConfigPath is the settings file the retired legacy plugin left
	// behind, empty when no legacy plugin was found.
	LegacyConfigPath string
}

// HasFailures reports whether any update failed.
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}
