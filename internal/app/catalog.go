package app

import "strings"

const (
	// DefaultBaseURL hosts the release binaries.
	DefaultBaseURL = "https://vip.123pan.cn/1824544011/Triggernometry_Release_CN/"
	// DefaultResourceURL is the shared page with manual downloads and
	// community resources.
	DefaultResourceURL = "https://www.123pan.com/s/1xRXjv-340BH.html"
)

// Dependency is a plugin that must already be registered before the target
// can be installed.
type Dependency struct {
	// Name is the lookup fragment matched against file names.
	Name        string
	Description string
}

// Catalog names every plugin and remote file an install run deals with.
type Catalog struct {
	BaseURL string

	// Dependencies are checked in order. The target is inserted right
	// after the first one.
	Dependencies []Dependency

	// LegacyFragments identify a rebranded build of the target that must
	// be retired first. Tried in order; first match wins.
	LegacyFragments []string

	Target       string
	TargetBinary string
	// Localization is saved next to the target binary under this name.
	Localization string

	Secondary       string
	SecondaryBinary string
	SecondaryCN     string
	SecondaryIntl   string
}

// DefaultCatalog returns the Triggernometry release layout.
func DefaultCatalog() Catalog {
	return Catalog{
		BaseURL: DefaultBaseURL,
		Dependencies: []Dependency{
			{Name: "FFXIV_ACT_Plugin", Description: "FFXIV parsing plugin"},
			{Name: "Overlay", Description: "ngld OverlayPlugin"},
		},
		LegacyFragments: []string{"MlmTr", "莫灵喵"},
		Target:          "Triggernometry",
		TargetBinary:    "Triggernometry.dll",
		Localization:    "zh-CN.triglations.xml",
		Secondary:       "PostNamazu",
		SecondaryBinary: "PostNamazu.dll",
		SecondaryCN:     "PostNamazuCN.dll",
		SecondaryIntl:   "PostNamazuInt.dll",
	}
}

// URL returns the remote location of file.
func (c Catalog) URL(file string) string {
	if c.BaseURL == "" {
		return file
	}
	return strings.TrimRight(c.BaseURL, "/") + "/" + file
}

// SecondaryFile returns the remote file for the chosen variant, or "" for
// SecondarySkip.
func (c Catalog) SecondaryFile(s Secondary) string {
	switch s {
	case SecondaryCN:
		return c.SecondaryCN
	case SecondaryIntl:
		return c.SecondaryIntl
	default:
		return ""
	}
}
