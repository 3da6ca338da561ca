package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MnFeN/Triggernometry/internal/adapters/command"
	"github.com/MnFeN/Triggernometry/internal/adapters/desktop"
	"github.com/MnFeN/Triggernometry/internal/adapters/filesystem"
	"github.com/MnFeN/Triggernometry/internal/adapters/httpfetch"
	"github.com/MnFeN/Triggernometry/internal/adapters/logging"
	"github.com/MnFeN/Triggernometry/internal/domain/platform"
	"github.com/MnFeN/Triggernometry/internal/domain/profile"
	"github.com/MnFeN/Triggernometry/internal/ports"
)

// deps bundles everything a command touches outside the process.
type deps struct {
	platform  *platform.Platform
	fs        ports.FileSystem
	fetcher   ports.Fetcher
	clipboard ports.Clipboard
	opener    ports.URLOpener
	logger    ports.Logger
	env       profile.Env

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// interactive is true when prompts can be shown.
	interactive bool
	// requireElevation fails unless the process may write into ACT.
	requireElevation func() error
}

// loadDeps is replaced in tests.
var loadDeps = defaultDeps

func defaultDeps(cmd *cobra.Command) (*deps, error) {
	p := platform.Detect()
	stderr := cmd.ErrOrStderr()

	var fs ports.FileSystem = filesystem.NewRealFileSystem()
	env := profile.OSEnv()
	if p.IsWSL() {
		fs = filesystem.NewMappedFileSystem(fs, p.LocalPath)
		env.Getwd = windowsWorkingDir
	}

	fetchOpts := []httpfetch.Option{httpfetch.WithTimeout(installTimeout)}
	if !quiet && isTerminal(stderr) {
		fetchOpts = append(fetchOpts, httpfetch.WithProgress(stderr))
	}

	return &deps{
		platform:         p,
		fs:               fs,
		fetcher:          httpfetch.NewFetcher(fetchOpts...),
		clipboard:        desktop.NewSystemClipboard(),
		opener:           desktop.NewBrowserOpener(command.NewRealRunner(), p),
		logger:           newLogger(stderr),
		env:              env,
		stdin:            cmd.InOrStdin(),
		stdout:           cmd.OutOrStdout(),
		stderr:           stderr,
		interactive:      isTerminal(cmd.InOrStdin()),
		requireElevation: p.RequireElevation,
	}, nil
}

func newLogger(w io.Writer) ports.Logger {
	level := ports.LevelInfo
	switch {
	case verbose:
		level = ports.LevelDebug
	case quiet:
		level = ports.LevelWarn
	}
	return logging.NewConsoleLogger(
		logging.WithOutput(w),
		logging.WithLevel(level),
		logging.WithJSONFormat(logJSON),
		logging.WithTimestamp(logJSON || verbose),
		logging.WithColor(!logJSON && isTerminal(w)),
	)
}

// windowsWorkingDir spells a /mnt/<drive> working directory the way ACT
// records paths, so paths derived from it stay valid inside the document.
func windowsWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if !platform.IsWSLMountPath(wd) {
		return wd, nil
	}
	return platform.ToWindows(wd)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// loadSettings reads --settings, if given.
func loadSettings(d *deps) (*profile.Settings, error) {
	if settingsPath == "" {
		return nil, nil
	}
	return profile.LoadSettings(d.fs, settingsPath)
}
