package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the known ACT distributions",
	Long: `Profiles lists the built-in ACT distributions, plus any defined in the
settings file, with the paths they resolve to from the current directory.`,
	RunE: runProfiles,
}

var profilesJSON bool

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Output as JSON")
}

// ProfileInfo represents profile metadata.
type ProfileInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	ConfigPath string   `json:"config_path"`
	PluginDir  string   `json:"plugin_dir"`
	Notes      []string `json:"notes,omitempty"`
	Default    bool     `json:"default"`
	Error      string   `json:"error,omitempty"`
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	settings, err := loadSettings(d)
	if err != nil {
		return err
	}

	defaultName := ""
	if settings != nil {
		defaultName = settings.DefaultProfile
	}

	var infos []ProfileInfo
	for _, p := range settings.ProfileSet().All() {
		info := ProfileInfo{
			Name:       p.Name,
			Title:      p.Title,
			ConfigPath: p.ConfigPath,
			PluginDir:  p.PluginDir,
			Notes:      p.Notes,
			Default:    p.Name == defaultName,
		}
		if r, err := p.Resolve(d.env); err == nil {
			info.ConfigPath = r.ConfigPath
			info.PluginDir = r.PluginDir
		} else {
			info.Error = err.Error()
		}
		infos = append(infos, info)
	}

	if profilesJSON {
		enc := json.NewEncoder(d.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	w := tabwriter.NewWriter(d.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTITLE\tCONFIG")
	for _, info := range infos {
		name := info.Name
		if info.Default {
			name += " *"
		}
		config := info.ConfigPath
		if info.Error != "" {
			config += " (" + info.Error + ")"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, info.Title, config)
	}
	return w.Flush()
}
