package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MnFeN/Triggernometry/internal/app"
	"github.com/MnFeN/Triggernometry/internal/domain/profile"
	"github.com/MnFeN/Triggernometry/internal/domain/registry"
	"github.com/MnFeN/Triggernometry/internal/ports"
	"github.com/MnFeN/Triggernometry/internal/tui"
	"github.com/MnFeN/Triggernometry/internal/tui/components"
	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register Triggernometry (and PostNamazu) in ACT",
	Long: `Install patches the plugin list of an ACT configuration document.

It verifies that the FFXIV parsing plugin and OverlayPlugin are registered,
retires the MlmTriggernometry build if present, registers Triggernometry
right after the parsing plugin, downloads its files, optionally installs
PostNamazu, and writes the document together with its "_" backup.

ACT must not be running while the installer works.

Examples:
  triginstall install                              # choose interactively
  triginstall install --profile original --yes     # stock ACT, no prompts
  triginstall install --profile cafeact --postnamazu cn
  triginstall install --profile dmmod --dry-run    # show what would change`,
	RunE: runInstall,
}

var (
	installProfile       string
	installPostNamazu    string
	installYes           bool
	installTimeout       time.Duration
	installOpenResources bool
	installSkipAdmin     bool
	installDryRun        bool
)

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVarP(&installProfile, "profile", "p", "", "ACT distribution: original, dmmod, cafeact or a settings profile")
	installCmd.Flags().StringVar(&installPostNamazu, "postnamazu", "", "PostNamazu build to install: skip, cn or intl")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "confirm the profile preconditions without asking")
	installCmd.Flags().DurationVar(&installTimeout, "timeout", 0, "per-download timeout (0 means none)")
	installCmd.Flags().BoolVar(&installOpenResources, "open-resources", false, "open the shared resource page when done")
	installCmd.Flags().BoolVar(&installSkipAdmin, "skip-admin-check", false, "do not require administrator privileges")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show the changes without downloading or writing")

	_ = installCmd.RegisterFlagCompletionFunc("postnamazu", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"skip\tDo not install PostNamazu",
			"cn\tBuild for the Chinese client",
			"intl\tBuild for the international client",
		}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = installCmd.RegisterFlagCompletionFunc("profile", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range profile.Builtin() {
			names = append(names, p.Name+"\t"+p.Title)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

var errAborted = errors.New("installation aborted")

// promptRequiredError is returned when a choice needs a prompt but stdin is
// not a terminal.
type promptRequiredError struct {
	Flag string
}

func (e *promptRequiredError) Error() string {
	return fmt.Sprintf("--%s is required when input is not a terminal", e.Flag)
}

func (e *promptRequiredError) Suggestion() string {
	return fmt.Sprintf("Pass --%s, or run the installer from an interactive console.", e.Flag)
}

// downloadFailuresError reports updates that failed after the document was
// written.
type downloadFailuresError struct {
	Failures    []app.Failure
	ResourceURL string
}

func (e *downloadFailuresError) Error() string {
	return fmt.Sprintf("%d download(s) failed; the configuration was still updated", len(e.Failures))
}

func (e *downloadFailuresError) Suggestion() string {
	return fmt.Sprintf("Download the missing files manually from %s and place them at the listed paths.", e.ResourceURL)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	settings, err := loadSettings(d)
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	_, _ = fmt.Fprintln(d.stdout, styles.Title.Render("Triggernometry / PostNamazu installer"))

	if !installSkipAdmin && !installDryRun {
		if err := d.requireElevation(); err != nil {
			return err
		}
	}

	resolved, err := chooseProfile(ctx, d, settings)
	if err != nil {
		return err
	}
	secondary, err := chooseSecondary(ctx, d)
	if err != nil {
		return err
	}
	if err := confirmNotes(ctx, d, resolved); err != nil {
		return err
	}

	catalog := app.DefaultCatalog()
	resourceURL := app.DefaultResourceURL
	if settings != nil {
		if settings.Remote.BaseURL != "" {
			catalog.BaseURL = settings.Remote.BaseURL
		}
		if settings.Remote.ResourceURL != "" {
			resourceURL = settings.Remote.ResourceURL
		}
	}

	installer := app.NewInstaller(d.fs, d.fetcher, d.logger).WithCatalog(catalog)
	result, err := installer.Run(ctx, app.Request{
		ConfigPath: resolved.ConfigPath,
		PluginDir:  resolved.PluginDir,
		Secondary:  secondary,
		DryRun:     installDryRun,
	})
	if result != nil {
		printResult(d.stdout, styles, result, installDryRun)
	}
	if err != nil {
		return err
	}

	if result.LegacyConfigPath != "" {
		announceLegacy(ctx, d, styles, result.LegacyConfigPath)
	}

	if installOpenResources && !installDryRun {
		if err := d.opener.Open(ctx, resourceURL); err != nil {
			d.logger.Warn(ctx, "could not open the resource page", ports.F("url", resourceURL), ports.F("error", err))
		}
	} else if !installDryRun {
		_, _ = fmt.Fprintln(d.stdout, styles.Help.Render("Shared trigger resources: "+resourceURL))
	}

	if result.HasFailures() {
		return &downloadFailuresError{Failures: result.Failures, ResourceURL: resourceURL}
	}
	return nil
}

// chooseProfile resolves --profile, the settings default, or asks.
func chooseProfile(ctx context.Context, d *deps, settings *profile.Settings) (profile.Resolved, error) {
	set := settings.ProfileSet()

	name := installProfile
	if name == "" && settings != nil {
		name = settings.DefaultProfile
	}
	if name == "" {
		if !d.interactive {
			return profile.Resolved{}, &promptRequiredError{Flag: "profile"}
		}
		item, err := tui.Pick(ctx, "Which ACT distribution do you use?", profileItems(set, d.env), "", tui.Options{Input: d.stdin, Output: d.stdout})
		if err != nil {
			return profile.Resolved{}, err
		}
		name = item.ID
	}

	p, err := set.Lookup(name)
	if err != nil {
		return profile.Resolved{}, err
	}
	return p.Resolve(d.env)
}

func profileItems(set *profile.Set, env profile.Env) []components.ListItem {
	all := set.All()
	items := make([]components.ListItem, 0, len(all))
	for _, p := range all {
		desc := p.ConfigPath
		if r, err := p.Resolve(env); err == nil {
			desc = r.ConfigPath
		}
		items = append(items, components.ListItem{ID: p.Name, Title: p.Title, Description: desc})
	}
	return items
}

// chooseSecondary resolves --postnamazu or asks; non-interactive runs
// default to skipping it.
func chooseSecondary(ctx context.Context, d *deps) (app.Secondary, error) {
	if installPostNamazu != "" || !d.interactive {
		return app.ParseSecondary(installPostNamazu)
	}

	item, err := tui.Pick(ctx, "Install PostNamazu?", secondaryItems(), app.SecondarySkip.String(), tui.Options{Input: d.stdin, Output: d.stdout})
	if err != nil {
		return app.SecondarySkip, err
	}
	return app.ParseSecondary(item.ID)
}

func secondaryItems() []components.ListItem {
	return []components.ListItem{
		{ID: app.SecondarySkip.String(), Title: "Do not install PostNamazu"},
		{ID: app.SecondaryCN.String(), Title: "PostNamazu for the Chinese client"},
		{ID: app.SecondaryIntl.String(), Title: "PostNamazu for the international client"},
	}
}

// confirmNotes prints the profile's preconditions and waits for the
// operator unless --yes was given.
func confirmNotes(ctx context.Context, d *deps, r profile.Resolved) error {
	styles := ui.DefaultStyles()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Selected %s. Make sure that:\n", r.Title))
	for i, note := range r.Notes {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, note))
	}
	b.WriteString(styles.Help.Render("Config:  "+r.ConfigPath) + "\n")
	b.WriteString(styles.Help.Render("Plugins: "+r.PluginDir) + "\n")
	_, _ = fmt.Fprint(d.stdout, b.String())

	if installYes || installDryRun {
		return nil
	}
	if !d.interactive {
		return &promptRequiredError{Flag: "yes"}
	}

	ok, err := tui.Confirm(ctx, r.Title, "Are all of the above true?", tui.Options{Input: d.stdin, Output: d.stdout})
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}
	return nil
}

// announceLegacy tells the operator where the retired build's settings
// live and puts the path on the clipboard.
func announceLegacy(ctx context.Context, d *deps, styles ui.Styles, path string) {
	_, _ = fmt.Fprintln(d.stdout, styles.Warning.Render("MlmTriggernometry was removed. Its triggers are still stored in:"))
	_, _ = fmt.Fprintln(d.stdout, "  "+path)
	_, _ = fmt.Fprintln(d.stdout, "Import that file from Triggernometry to keep them.")

	if err := d.clipboard.WriteAll(path); err != nil {
		d.logger.Warn(ctx, "could not copy the path to the clipboard", ports.F("error", err))
		return
	}
	_, _ = fmt.Fprintln(d.stdout, styles.Help.Render("(The path has been copied to the clipboard.)"))
}

func printResult(w io.Writer, styles ui.Styles, r *app.Result, dryRun bool) {
	heading := "Changes"
	if dryRun {
		heading = "Changes (dry run, nothing was written)"
	}
	_, _ = fmt.Fprintln(w, styles.Subtitle.Render(heading))

	for _, name := range r.Removed {
		_, _ = fmt.Fprintln(w, styles.Error.Render("  - "+name))
	}
	for _, name := range r.Inserted {
		_, _ = fmt.Fprintln(w, styles.Success.Render("  + "+name))
	}

	updates := r.Updates
	if dryRun {
		updates = r.Planned
	}
	for _, u := range updates {
		_, _ = fmt.Fprintf(w, "  ↓ %s\n", u.Path)
	}
	for _, f := range r.Failures {
		_, _ = fmt.Fprintln(w, styles.Warning.Render(fmt.Sprintf("  ! %s: %v", f.Path, f.Err)))
	}
	for _, path := range r.Written {
		_, _ = fmt.Fprintln(w, styles.Info.Render("  ✓ wrote "+path))
	}
	if r.Phase != app.PhaseFailed {
		return
	}
	if len(r.Written) == 0 {
		_, _ = fmt.Fprintln(w, styles.Error.Render("  installation stopped; the configuration was not modified"))
		return
	}
	msg := fmt.Sprintf("  installation stopped after writing %s", strings.Join(r.Written, ", "))
	var pErr *registry.PersistenceError
	if errors.As(r.Err, &pErr) {
		msg += fmt.Sprintf("; writing %s failed", pErr.Path)
	}
	_, _ = fmt.Fprintln(w, styles.Error.Render(msg))
}
