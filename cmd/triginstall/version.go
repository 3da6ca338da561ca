package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MnFeN/Triggernometry/internal/domain/platform"
)

// Version information set by build flags.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "triginstall %s\n", version)
		_, _ = fmt.Fprintf(out, "  commit:   %s\n", commit)
		_, _ = fmt.Fprintf(out, "  built:    %s\n", buildDate)
		_, _ = fmt.Fprintf(out, "  platform: %s\n", platform.Detect())
	},
}
