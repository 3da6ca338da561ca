package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// Remote locates the release files and the shared resource page.
type Remote struct {
	BaseURL     string `yaml:"base_url" toml:"base_url"`
	ResourceURL string `yaml:"resource_url" toml:"resource_url"`
}

// Settings is the optional user settings file.
type Settings struct {
	Remote Remote `yaml:"remote" toml:"remote"`
	// DefaultProfile is used when no profile is given on the command line.
	DefaultProfile string    `yaml:"default_profile" toml:"default_profile"`
	Profiles       []Profile `yaml:"profiles" toml:"profiles"`
}

// ProfileSet returns the built-in profiles merged with the settings'.
func (s *Settings) ProfileSet() *Set {
	set := NewSet(Builtin()...)
	if s != nil {
		set.Merge(s.Profiles...)
	}
	return set
}

// LoadSettings reads a settings file. The format follows the extension:
// .yaml/.yml, .toml or .ini.
func LoadSettings(fs ports.FileSystem, path string) (*Settings, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, &SettingsError{Path: path, Err: err}
	}

	var settings *Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		settings, err = parseYAML(data)
	case ".toml":
		settings, err = parseTOML(data)
	case ".ini":
		settings, err = parseINI(data)
	default:
		err = fmt.Errorf("unsupported format %q (use .yaml, .toml or .ini)", ext)
	}
	if err != nil {
		return nil, &SettingsError{Path: path, Err: err}
	}
	if err := settings.validate(); err != nil {
		return nil, &SettingsError{Path: path, Err: err}
	}
	return settings, nil
}

func parseYAML(data []byte) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &s, nil
}

func parseTOML(data []byte) (*Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return &s, nil
}

// parseINI reads a [remote] section and one [profile <name>] section per
// profile. Notes are separated by "|".
func parseINI(data []byte) (*Settings, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("invalid INI: %w", err)
	}

	s := &Settings{}
	if sec, err := cfg.GetSection("remote"); err == nil {
		s.Remote.BaseURL = sec.Key("base_url").String()
		s.Remote.ResourceURL = sec.Key("resource_url").String()
	}
	s.DefaultProfile = cfg.Section(ini.DefaultSection).Key("default_profile").String()

	for _, sec := range cfg.Sections() {
		name, ok := strings.CutPrefix(sec.Name(), "profile ")
		if !ok {
			continue
		}
		p := Profile{
			Name:       strings.TrimSpace(name),
			Title:      sec.Key("title").String(),
			ConfigPath: sec.Key("config_path").String(),
			PluginDir:  sec.Key("plugin_dir").String(),
		}
		if sec.HasKey("notes") {
			for _, note := range sec.Key("notes").Strings("|") {
				if note != "" {
					p.Notes = append(p.Notes, note)
				}
			}
		}
		s.Profiles = append(s.Profiles, p)
	}
	return s, nil
}

func (s *Settings) validate() error {
	for i, p := range s.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("profile #%d has no name", i+1)
		}
	}
	if u := s.Remote.BaseURL; u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return fmt.Errorf("remote.base_url must be an http(s) URL, got %q", u)
	}
	return nil
}
