package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/MnFeN/Triggernometry/internal/app"
	"github.com/MnFeN/Triggernometry/internal/domain/platform"
	"github.com/MnFeN/Triggernometry/internal/domain/profile"
	"github.com/MnFeN/Triggernometry/internal/testutil/mocks"
)

const (
	appData      = `C:\Users\Player\AppData\Roaming`
	actRoot      = `C:\ACT`
	originalConf = appData + `\Advanced Combat Tracker\Config\Advanced Combat Tracker.config.xml`
	originalDir  = appData + `\Advanced Combat Tracker\Plugins`
	dmmodConf    = actRoot + `\Config\Advanced Combat Tracker.config.xml`
)

// harness runs the root command against in-memory adapters.
type harness struct {
	fs          *mocks.FileSystem
	fetcher     *mocks.Fetcher
	clipboard   *mocks.Clipboard
	opener      *mocks.URLOpener
	logger      *mocks.Logger
	out         *bytes.Buffer
	interactive bool
	elevated    bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		fs:        mocks.NewFileSystem(),
		fetcher:   mocks.NewFetcher(),
		clipboard: mocks.NewClipboard(),
		opener:    mocks.NewURLOpener(),
		logger:    mocks.NewLogger(),
		out:       &bytes.Buffer{},
		elevated:  true,
	}

	catalog := app.DefaultCatalog()
	for _, file := range []string{catalog.TargetBinary, catalog.Localization, catalog.SecondaryCN, catalog.SecondaryIntl} {
		h.fetcher.AddResponse(catalog.URL(file), "content of "+file)
	}

	previous := loadDeps
	loadDeps = func(_ *cobra.Command) (*deps, error) {
		return &deps{
			platform:  platform.New(platform.OSWindows, "amd64", platform.EnvNative),
			fs:        h.fs,
			fetcher:   h.fetcher,
			clipboard: h.clipboard,
			opener:    h.opener,
			logger:    h.logger,
			env: profile.Env{
				LookupEnv: func(key string) (string, bool) {
					if key == "APPDATA" {
						return appData, true
					}
					return "", false
				},
				Getwd: func() (string, error) { return actRoot, nil },
			},
			stdin:       &bytes.Buffer{},
			stdout:      h.out,
			stderr:      h.out,
			interactive: h.interactive,
			requireElevation: func() error {
				if !h.elevated {
					return &platform.ElevationError{OS: platform.OSWindows}
				}
				return nil
			},
		}, nil
	}
	t.Cleanup(func() {
		loadDeps = previous
		resetFlags()
	})
	return h
}

func (h *harness) run(args ...string) error {
	resetFlags()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(h.out)
	rootCmd.SetErr(h.out)
	return rootCmd.ExecuteContext(context.Background())
}

func resetFlags() {
	settingsPath = ""
	verbose = false
	quiet = false
	logJSON = false

	installProfile = ""
	installPostNamazu = ""
	installYes = false
	installTimeout = 0
	installOpenResources = false
	installSkipAdmin = false
	installDryRun = false

	listProfile = ""
	listJSON = false
	profilesJSON = false
}

// staticError carries a fixed suggestion.
type staticError struct {
	msg, suggestion string
	cause           error
}

func (e *staticError) Error() string      { return e.msg }
func (e *staticError) Suggestion() string { return e.suggestion }
func (e *staticError) Unwrap() error      { return e.cause }

var errBoom = errors.New("boom")
