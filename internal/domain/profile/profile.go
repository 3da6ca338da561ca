// Package profile describes the ACT installations the installer knows how
// to patch. A profile names where the configuration document lives and
// where plugins are placed, using path templates resolved against the
// environment at run time.
package profile

import (
	"sort"
	"strings"
)

// Built-in profile names.
const (
	NameOriginal = "original"
	NameDMMod    = "dmmod"
	NameCafeACT  = "cafeact"
)

// Profile is one kind of ACT installation.
type Profile struct {
	Name  string `yaml:"name" toml:"name"`
	Title string `yaml:"title" toml:"title"`
	// ConfigPath and PluginDir are templates. "/" separates components;
	// see Resolve for the placeholders.
	ConfigPath string `yaml:"config_path" toml:"config_path"`
	PluginDir  string `yaml:"plugin_dir" toml:"plugin_dir"`
	// Notes are preconditions the operator must confirm before a run.
	Notes []string `yaml:"notes" toml:"notes"`
}

const (
	noteActClosed  = "No ACT instance is running."
	noteInRoot     = "This tool is placed in the ACT root folder and started from there."
	noteDependency = "The FFXIV parsing plugin and ngld OverlayPlugin are installed, and ACT has been restarted since."
)

// Builtin returns the profiles for the stock ACT installer, the DM
// integrated bundle, and CafeACT.
func Builtin() []Profile {
	return []Profile{
		{
			Name:       NameOriginal,
			Title:      "Original ACT",
			ConfigPath: "${APPDATA}/Advanced Combat Tracker/Config/Advanced Combat Tracker.config.xml",
			PluginDir:  "${APPDATA}/Advanced Combat Tracker/Plugins",
			Notes:      []string{noteActClosed, noteDependency},
		},
		{
			Name:       NameDMMod,
			Title:      "DM integrated bundle",
			ConfigPath: "{cwd}/Config/Advanced Combat Tracker.config.xml",
			PluginDir:  "{cwd}/Plugins",
			Notes:      []string{noteInRoot, noteActClosed},
		},
		{
			Name:       NameCafeACT,
			Title:      "CafeACT",
			ConfigPath: "{cwd}/AppData/Advanced Combat Tracker/Config/CafeACT.config.xml",
			PluginDir:  "{cwd}/Plugins",
			Notes: []string{
				noteInRoot,
				noteActClosed,
				"The FFXIV parsing plugin, ngld OverlayPlugin and Triggernometry are installed from the plugin center, and ACT has been restarted since.",
			},
		},
	}
}

// Set is an ordered collection of profiles with unique names.
type Set struct {
	profiles []Profile
}

// NewSet creates a set from profiles. Later profiles replace earlier ones
// with the same name in place.
func NewSet(profiles ...Profile) *Set {
	s := &Set{}
	s.Merge(profiles...)
	return s
}

// Merge adds profiles, replacing any existing profile of the same name.
// Names are compared case-insensitively. Empty fields of a replacement keep
// the existing value.
func (s *Set) Merge(profiles ...Profile) {
	for _, p := range profiles {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if i := s.index(p.Name); i >= 0 {
			s.profiles[i] = overlay(s.profiles[i], p)
			continue
		}
		if p.Title == "" {
			p.Title = p.Name
		}
		s.profiles = append(s.profiles, p)
	}
}

func overlay(base, p Profile) Profile {
	if p.Title != "" {
		base.Title = p.Title
	}
	if p.ConfigPath != "" {
		base.ConfigPath = p.ConfigPath
	}
	if p.PluginDir != "" {
		base.PluginDir = p.PluginDir
	}
	if len(p.Notes) > 0 {
		base.Notes = p.Notes
	}
	return base
}

func (s *Set) index(name string) int {
	for i, p := range s.profiles {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Lookup returns the profile called name.
func (s *Set) Lookup(name string) (Profile, error) {
	if i := s.index(strings.TrimSpace(name)); i >= 0 {
		return s.profiles[i], nil
	}
	return Profile{}, &UnknownProfileError{Name: name, Available: s.Names()}
}

// All returns the profiles in order.
func (s *Set) All() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Names returns the sorted profile names.
func (s *Set) Names() []string {
	names := make([]string, len(s.profiles))
	for i, p := range s.profiles {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// Len returns the number of profiles.
func (s *Set) Len() int {
	return len(s.profiles)
}
