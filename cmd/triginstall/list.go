package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MnFeN/Triggernometry/internal/app"
	"github.com/MnFeN/Triggernometry/internal/domain/registry"
	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the plugins registered in ACT",
	Long: `List prints the plugin list ACT will load, in load order, and marks the
plugins the installer cares about.

Examples:
  triginstall list --profile original
  triginstall list --profile cafeact --json`,
	RunE: runList,
}

var (
	listProfile string
	listJSON    bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listProfile, "profile", "p", "", "ACT distribution to inspect")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

// PluginInfo is one row of the list output.
type PluginInfo struct {
	Index   int    `json:"index"`
	Enabled bool   `json:"enabled"`
	File    string `json:"file"`
	Folder  string `json:"folder"`
	Role    string `json:"role,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	settings, err := loadSettings(d)
	if err != nil {
		return err
	}

	name := listProfile
	if name == "" && settings != nil {
		name = settings.DefaultProfile
	}
	if name == "" {
		return &promptRequiredError{Flag: "profile"}
	}
	p, err := settings.ProfileSet().Lookup(name)
	if err != nil {
		return err
	}
	resolved, err := p.Resolve(d.env)
	if err != nil {
		return err
	}

	data, err := d.fs.ReadFile(resolved.ConfigPath)
	if err != nil {
		return &registry.DocumentNotFoundError{Path: resolved.ConfigPath, Err: err}
	}
	frag, err := registry.ExtractFragment(string(data))
	if err != nil {
		return &registry.UnsupportedDocumentError{Path: resolved.ConfigPath}
	}
	reg := registry.ParseRecords(frag.Inner)

	catalog := app.DefaultCatalog()
	infos := make([]PluginInfo, 0, reg.Len())
	for i, rec := range reg.Records() {
		infos = append(infos, PluginInfo{
			Index:   i + 1,
			Enabled: rec.Enabled(),
			File:    rec.FileName(),
			Folder:  rec.Folder(),
			Role:    pluginRole(catalog, rec),
		})
	}

	if listJSON {
		enc := json.NewEncoder(d.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	styles := ui.DefaultStyles()
	_, _ = fmt.Fprintln(d.stdout, styles.Subtitle.Render(resolved.ConfigPath))
	if len(infos) == 0 {
		_, _ = fmt.Fprintln(d.stdout, styles.Help.Render("No plugins registered."))
		return nil
	}

	w := tabwriter.NewWriter(d.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tENABLED\tPLUGIN\tROLE\tFOLDER")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%d\t%v\t%s\t%s\t%s\n", info.Index, info.Enabled, info.File, info.Role, info.Folder)
	}
	return w.Flush()
}

// pluginRole names what rec means to the installer, or "".
func pluginRole(c app.Catalog, rec *registry.Record) string {
	one := []*registry.Record{rec}
	for _, dep := range c.Dependencies {
		if registry.Find(dep.Name, one) != nil {
			return "dependency"
		}
	}
	switch {
	case registry.FindAny(one, c.LegacyFragments...) != nil:
		return "legacy"
	case registry.Find(c.Target, one) != nil:
		return "target"
	case registry.Find(c.Secondary, one) != nil:
		return "secondary"
	}
	return ""
}
