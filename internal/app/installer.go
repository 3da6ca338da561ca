// Package app runs an install: it patches the plugin list of an ACT
// configuration document and downloads the plugin files it registers.
package app

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"

	"github.com/MnFeN/Triggernometry/internal/domain/registry"
	"github.com/MnFeN/Triggernometry/internal/ports"
)

// BackupSuffix is appended to the config path for the second copy of the
// patched document.
const BackupSuffix = "_"

// Installer is the install orchestrator. One Installer runs one install at
// a time; Phase may be called concurrently with Run.
type Installer struct {
	fs      ports.FileSystem
	fetcher ports.Fetcher
	logger  ports.Logger
	catalog Catalog
	newID   func() string

	mu     sync.RWMutex
	phase  Phase
	interp *statekit.Interpreter[runContext]
}

// NewInstaller creates an Installer for the default catalog.
func NewInstaller(fs ports.FileSystem, fetcher ports.Fetcher, logger ports.Logger) *Installer {
	return &Installer{
		fs:      fs,
		fetcher: fetcher,
		logger:  logger,
		catalog: DefaultCatalog(),
		newID:   uuid.NewString,
		phase:   PhaseIdle,
	}
}

// WithCatalog replaces the plugin catalog.
func (i *Installer) WithCatalog(c Catalog) *Installer {
	i.catalog = c
	return i
}

// Catalog returns the plugin catalog in use.
func (i *Installer) Catalog() Catalog {
	return i.catalog
}

// Phase returns the phase of the current or most recent run.
func (i *Installer) Phase() Phase {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.phase
}

// run carries the per-run state shared by the phase steps.
type run struct {
	req    Request
	log    ports.Logger
	result *Result
	reg    *registry.Registry
	parser *registry.Record
	state  *runContext
}

// Run performs one install. A missing dependency, an unreadable or
// unsupported document, or cancellation aborts the run before anything is
// written. The document is written before its backup, so a failed backup
// write leaves the document changed; Result.Written lists the files that
// were written either way. Download failures are collected in
// Result.Failures and do not stop the run. The returned Result is non-nil
// whenever the request was valid, even when err is not.
func (i *Installer) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID := i.newID()
	state := &runContext{RunID: runID}
	interp, err := buildRunMachine(state)
	if err != nil {
		return nil, fmt.Errorf("failed to build run state machine: %w", err)
	}

	i.mu.Lock()
	i.interp = interp
	i.mu.Unlock()
	interp.Start()
	defer interp.Stop()

	r := &run{
		req:    req,
		log:    i.logger.With(ports.F("run", state.RunID)),
		result: &Result{RunID: state.RunID},
		state:  state,
	}
	r.log.Info(ctx, "install started",
		ports.F("config", req.ConfigPath),
		ports.F("plugin_dir", req.PluginDir),
		ports.F("secondary", req.Secondary.String()),
		ports.F("dry_run", req.DryRun))

	steps := []struct {
		event string
		fn    func(context.Context, *run) error
	}{
		{EventStart, nil},
		{EventChecked, i.check},
		{EventRetired, i.retireLegacy},
		{EventEnsured, i.ensureTarget},
		{EventUpdated, i.updateTarget},
		{EventSecondary, i.installSecondary},
		{EventCommitted, i.commit},
	}
	for _, step := range steps {
		if step.fn != nil {
			if err := ctx.Err(); err != nil {
				return i.fail(ctx, r, err)
			}
			if err := step.fn(ctx, r); err != nil {
				return i.fail(ctx, r, err)
			}
		}
		i.advance(ctx, r, step.event, nil)
	}

	r.log.Info(ctx, "install finished",
		ports.F("inserted", len(r.result.Inserted)),
		ports.F("removed", len(r.result.Removed)),
		ports.F("updates", len(r.result.Updates)),
		ports.F("failures", len(r.result.Failures)))
	return r.result, nil
}

func (i *Installer) advance(ctx context.Context, r *run, event string, payload interface{}) {
	i.mu.Lock()
	from := i.phase
	i.interp.Send(statekit.Event{Type: statekit.EventType(event), Payload: payload})
	i.phase = Phase(i.interp.State().Value)
	to := i.phase
	i.mu.Unlock()

	r.result.Phase = to
	r.log.Debug(ctx, "phase changed", ports.F("from", string(from)), ports.F("to", string(to)))
}

func (i *Installer) fail(ctx context.Context, r *run, err error) (*Result, error) {
	i.advance(ctx, r, EventFail, err)
	r.result.Err = r.state.Err
	r.log.Error(ctx, "install aborted", ports.F("error", err.Error()))
	return r.result, err
}

// check loads the registry and makes sure every dependency is registered.
func (i *Installer) check(ctx context.Context, r *run) error {
	data, err := i.fs.ReadFile(r.req.ConfigPath)
	if err != nil {
		return &registry.DocumentNotFoundError{Path: r.req.ConfigPath, Err: err}
	}
	doc := string(data)

	frag, err := registry.ExtractFragment(doc)
	if err != nil {
		return &registry.UnsupportedDocumentError{Path: r.req.ConfigPath}
	}
	r.reg = registry.ParseRecords(frag.Inner)
	r.result.Document = doc
	r.log.Debug(ctx, "plugin list parsed", ports.F("plugins", strings.Join(r.reg.FileNames(), ", ")))

	for n, dep := range i.catalog.Dependencies {
		rec := r.reg.Find(dep.Name)
		if rec == nil {
			return &registry.MissingDependencyError{Plugin: dep.Name, Description: dep.Description}
		}
		if n == 0 {
			r.parser = rec
		}
		r.log.Debug(ctx, "dependency found", ports.F("plugin", rec.FileName()))
	}
	return nil
}

// retireLegacy removes a rebranded build of the target.
func (i *Installer) retireLegacy(ctx context.Context, r *run) error {
	legacy := registry.FindAny(r.reg.Records(), i.catalog.LegacyFragments...)
	if legacy == nil {
		return nil
	}

	if !r.req.DryRun {
		legacy.Delete(i.fs)
	}
	r.reg.Remove(legacy)
	r.result.Removed = append(r.result.Removed, legacy.FileName())
	r.result.LegacyConfigPath = LegacyConfigPath(r.req.ConfigPath, legacy.FileName())

	r.log.Warn(ctx, "legacy plugin removed; its settings must be migrated by hand",
		ports.F("plugin", legacy.FileName()),
		ports.F("settings", r.result.LegacyConfigPath))
	return nil
}

// ensureTarget registers the target right after the parser plugin when it
// is not registered yet.
func (i *Installer) ensureTarget(ctx context.Context, r *run) error {
	if rec := r.reg.Find(i.catalog.Target); rec != nil {
		r.log.Debug(ctx, "target already registered", ports.F("plugin", rec.FileName()))
		return nil
	}

	target := registry.NewRecord(true, registry.JoinPath(r.req.PluginDir, i.catalog.TargetBinary))
	index := 0
	if r.parser != nil {
		index = r.reg.IndexOf(r.parser) + 1
	}
	r.reg.Insert(index, target)
	r.result.Inserted = append(r.result.Inserted, target.FileName())
	r.log.Info(ctx, "target registered", ports.F("plugin", target.FileName()), ports.F("index", index))
	return nil
}

func (i *Installer) updateTarget(ctx context.Context, r *run) error {
	target := r.reg.Find(i.catalog.Target)
	if target == nil {
		return fmt.Errorf("target plugin %s missing after registration", i.catalog.Target)
	}
	i.update(ctx, r, target, i.catalog.URL(i.catalog.TargetBinary), "")
	i.update(ctx, r, target, i.catalog.URL(i.catalog.Localization), i.catalog.Localization)
	return nil
}

func (i *Installer) installSecondary(ctx context.Context, r *run) error {
	file := i.catalog.SecondaryFile(r.req.Secondary)
	if file == "" {
		r.log.Debug(ctx, "secondary plugin skipped")
		return nil
	}

	rec := r.reg.Find(i.catalog.Secondary)
	if rec == nil {
		rec = registry.NewRecord(true, registry.JoinPath(r.req.PluginDir, i.catalog.SecondaryBinary))
		r.reg.Append(rec)
		r.result.Inserted = append(r.result.Inserted, rec.FileName())
		r.log.Info(ctx, "secondary plugin registered", ports.F("plugin", rec.FileName()))
	}
	i.update(ctx, r, rec, i.catalog.URL(file), "")
	return nil
}

// update issues one download. Failures are recorded and logged only.
func (i *Installer) update(ctx context.Context, r *run, rec *registry.Record, url, fileName string) {
	dest := rec.InstallPath()
	if fileName != "" {
		dest = rec.SiblingPath(fileName)
	}
	u := Update{Plugin: rec.FileName(), URL: url, Path: dest}
	r.result.Planned = append(r.result.Planned, u)
	log := r.log.With(ports.F("plugin", u.Plugin), ports.F("url", url), ports.F("path", dest))

	if r.req.DryRun {
		log.Info(ctx, "would download")
		return
	}

	if err := rec.Update(ctx, i.fetcher, i.fs, url, fileName); err != nil {
		r.result.Failures = append(r.result.Failures, Failure{Update: u, Err: err})
		log.Warn(ctx, "download failed", ports.F("error", err.Error()))
		return
	}
	r.result.Updates = append(r.result.Updates, u)
	log.Info(ctx, "downloaded")
}

// commit splices the new plugin list into the document and writes it to
// the config path and its backup.
func (i *Installer) commit(ctx context.Context, r *run) error {
	frag, err := registry.ExtractFragment(r.result.Document)
	if err != nil {
		return &registry.UnsupportedDocumentError{Path: r.req.ConfigPath}
	}
	doc := registry.Splice(r.result.Document, frag, registry.SerializeRecords(r.reg))
	r.result.Document = doc

	if r.req.DryRun {
		r.log.Info(ctx, "dry run; document not written")
		return nil
	}

	for _, p := range []string{r.req.ConfigPath, r.req.ConfigPath + BackupSuffix} {
		if err := i.fs.WriteFile(p, []byte(doc), 0o644); err != nil {
			return &registry.PersistenceError{Path: p, Err: err}
		}
		r.result.Written = append(r.result.Written, p)
		r.log.Info(ctx, "configuration written", ports.F("path", p))
	}
	return nil
}

// LegacyConfigPath returns where ACT keeps the settings of the plugin file
// pluginFile: next to the main configuration document, named after the
// plugin file without its extension.
func LegacyConfigPath(configPath, pluginFile string) string {
	dir := ""
	if k := strings.LastIndexAny(configPath, `\/`); k >= 0 {
		dir = configPath[:k+1]
	}
	stem := strings.TrimSuffix(pluginFile, path.Ext(pluginFile))
	if dir == "" {
		return stem + ".config.xml"
	}
	return registry.JoinPath(dir, stem+".config.xml")
}
