package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	settingsPath string
	verbose      bool
	quiet        bool
	logJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "triginstall",
	Short: "Install Triggernometry and PostNamazu into ACT",
	Long: `triginstall registers the Triggernometry trigger plugin, and optionally
PostNamazu, in an Advanced Combat Tracker installation.

It patches the plugin list of ACT's configuration document in place:
  Check → Retire legacy build → Register → Download → Write`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file (.yaml, .toml or .ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write log entries as JSON")

	_ = rootCmd.RegisterFlagCompletionFunc("settings", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml", "ini"}, cobra.ShellCompDirectiveFilterFileExt
	})

	rootCmd.AddCommand(versionCmd)
}

// suggester is implemented by errors that know how the operator can
// recover.
type suggester interface {
	Suggestion() string
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the message and suggestion.
// With verbose=true: also shows the underlying error chain.
func formatError(err error) string {
	msg := err.Error()

	var s suggester
	if errors.As(err, &s) && s.Suggestion() != "" {
		msg += fmt.Sprintf("\n\nSuggestion: %s", s.Suggestion())
	}
	if verbose {
		if cause := errors.Unwrap(err); cause != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", cause)
		}
	}
	return msg
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
