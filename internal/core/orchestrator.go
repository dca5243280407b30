package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mountd-cli/mountd/internal/core/adapter"
	"github.com/mountd-cli/mountd/internal/core/catalog"
)

// Orchestrator runs the add flow: resolve a source to local content, pick
// target agents, expand registry selections and hand each concrete item to
// the Installer.
type Orchestrator struct {
	files     *Files
	cm        *ConfigManager
	reg       *adapter.Registry
	fetcher   Fetcher
	sel       Selector
	installer *Installer
	log       *slog.Logger
}

// NewOrchestrator wires an Orchestrator for the project of cm.
func NewOrchestrator(files *Files, cm *ConfigManager, reg *adapter.Registry, fetcher Fetcher, sel Selector, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		files:     files,
		cm:        cm,
		reg:       reg,
		fetcher:   fetcher,
		sel:       sel,
		installer: NewInstaller(files, cm, log),
		log:       log,
	}
}

// AddOptions configures an add.
type AddOptions struct {
	Source string       // empty reinstalls everything recorded
	Items  []string     // registry item names; empty prompts
	All    bool         // select every registry item
	Kind   catalog.Kind // kind for single-item sources; default skill
	Force  bool
	Agents AgentOptions
}

// Add installs from opts.Source. Precondition failures are returned as
// errors; per-item problems are collected in the report.
func (o *Orchestrator) Add(ctx context.Context, opts AddOptions) (*Report, error) {
	src, err := ParseSource(opts.Source)
	if err != nil {
		return nil, err
	}
	o.log.Debug("parsed source", "kind", src.Kind, "input", src.Input)

	switch src.Kind {
	case SourceReinstall:
		return o.Reinstall(ctx, opts)
	case SourceLocal:
		p := o.absPath(src.Path)
		info, err := o.files.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, p)
		}
		if info.IsDir && catalog.HasManifest(o.files.Fs(), p) {
			cat, err := catalog.Load(o.files.Fs(), p)
			if err != nil {
				return nil, err
			}
			return o.installCatalog(cat, func(it catalog.Item) string {
				return filepath.Join(cat.Root, it.Path)
			}, opts)
		}
	case SourceGitHubRepo:
		root, cleanup, err := o.downloadArchive(ctx, src.GitHub.ArchiveURL())
		if err != nil {
			return nil, err
		}
		defer cleanup()

		cat, err := catalog.Load(o.files.Fs(), root)
		if err != nil {
			return nil, fmt.Errorf("%s is not a mountd registry: %w", src.GitHub.RepoURL(), err)
		}
		gh := *src.GitHub
		return o.installCatalog(cat, func(it catalog.Item) string {
			return gh.ItemURL(it.Path)
		}, opts)
	}

	agents, err := SelectAgents(o.reg, o.cm, o.sel, opts.Agents)
	if err != nil {
		return nil, err
	}
	o.log.Info("using agents", "agents", strings.Join(adapter.DisplayNames(agents), ", "))

	return o.installSource(ctx, src, opts.Kind, "", agents, opts.Force)
}

// LoadCatalog loads the registry behind a local directory or GitHub
// repository source without installing anything. The returned cleanup
// removes downloaded files.
func (o *Orchestrator) LoadCatalog(ctx context.Context, input string) (*catalog.Catalog, func(), error) {
	src, err := ParseSource(input)
	if err != nil {
		return nil, nil, err
	}

	switch src.Kind {
	case SourceLocal:
		p := o.absPath(src.Path)
		if !o.files.Exists(p) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSourceNotFound, p)
		}
		cat, err := catalog.Load(o.files.Fs(), p)
		if err != nil {
			return nil, nil, err
		}
		return cat, func() {}, nil
	case SourceGitHubRepo:
		root, cleanup, err := o.downloadArchive(ctx, src.GitHub.ArchiveURL())
		if err != nil {
			return nil, nil, err
		}
		cat, err := catalog.Load(o.files.Fs(), root)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("%s is not a mountd registry: %w", src.GitHub.RepoURL(), err)
		}
		return cat, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("%s is not a registry source; use a local directory or a GitHub repository", src.Input)
	}
}

// Reinstall installs every recorded item again from its recorded source.
// Agents are chosen once for the whole batch.
func (o *Orchestrator) Reinstall(ctx context.Context, opts AddOptions) (*Report, error) {
	cfg, err := o.cm.Load()
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if len(cfg.Installed) == 0 {
		report.Warn("", "no installed skills found in "+ConfigFileName)
		return report, nil
	}
	records := append([]InstalledSkill(nil), cfg.Installed...)

	agents, err := SelectAgents(o.reg, o.cm, o.sel, opts.Agents)
	if err != nil {
		return nil, err
	}
	o.log.Info("using agents", "agents", strings.Join(adapter.DisplayNames(agents), ", "))

	for _, rec := range records {
		o.log.Info("reinstalling", "item", rec.Name, "source", rec.Source)

		src, err := ParseSource(rec.Source)
		if err == nil && (src.Kind == SourceReinstall || src.Kind == SourceGitHubRepo) {
			err = fmt.Errorf("recorded source %q is not a single item", rec.Source)
		}
		if err != nil {
			report.Add(Result{Item: rec.Name, Status: StatusFailed, Err: err, Message: err.Error()})
			continue
		}

		sub, err := o.installSource(ctx, src, rec.Kind, rec.Version, agents, opts.Force)
		if err != nil {
			report.Add(Result{Item: rec.Name, Status: StatusFailed, Err: err, Message: err.Error()})
			continue
		}
		report.Merge(sub)
	}
	return report, nil
}

// installSource materializes a single-item source locally and installs it.
func (o *Orchestrator) installSource(ctx context.Context, src *Source, kind catalog.Kind, version string, agents []adapter.Adapter, force bool) (*Report, error) {
	req := InstallRequest{
		Source:  src.String(),
		Kind:    kind,
		Version: version,
		Agents:  agents,
		Force:   force,
	}

	switch src.Kind {
	case SourceLocal:
		req.Path = o.absPath(src.Path)
		return o.installer.InstallLocal(req)

	case SourceGitHubFile:
		p, cleanup, err := o.downloadFile(ctx, src.GitHub.RawURL(), path.Base(src.GitHub.Path))
		if err != nil {
			return nil, err
		}
		defer cleanup()
		req.Path = p
		return o.installer.InstallLocal(req)

	case SourceGitHubTree:
		root, cleanup, err := o.downloadArchive(ctx, src.GitHub.ArchiveURL())
		if err != nil {
			return nil, err
		}
		defer cleanup()
		req.Path = filepath.Join(root, filepath.FromSlash(src.GitHub.Path))
		return o.installer.InstallLocal(req)

	case SourceZip:
		dir, cleanup, err := o.extractTo(ctx, src.URL)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		req.Path = dir
		if root, ok := FindRootDir(o.files.Fs(), dir); ok {
			req.Path = root
		}
		return o.installer.InstallLocal(req)

	case SourceRawFile:
		p, cleanup, err := o.downloadFile(ctx, src.URL, rawFileName(src.URL))
		if err != nil {
			return nil, err
		}
		defer cleanup()
		req.Path = p
		return o.installer.InstallLocal(req)

	default:
		return nil, fmt.Errorf("unsupported source type: %s", src.Kind)
	}
}

// installCatalog selects registry items, expands bundles and installs the
// concrete results. itemSource gives the recorded origin of an item.
func (o *Orchestrator) installCatalog(cat *catalog.Catalog, itemSource func(catalog.Item) string, opts AddOptions) (*Report, error) {
	report := &Report{}

	selected, err := o.selectItems(cat, opts, report)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return report, nil
	}

	agents, err := SelectAgents(o.reg, o.cm, o.sel, opts.Agents)
	if err != nil {
		return nil, err
	}
	o.log.Info("using agents", "agents", strings.Join(adapter.DisplayNames(agents), ", "))

	res := catalog.ResolveSelection(cat, selected)
	for _, w := range res.Warnings {
		o.log.Warn(w.String(), "bundle", w.Bundle)
		report.Warn(w.Bundle, w.String())
	}
	for _, name := range res.Missing {
		report.Warn(name, fmt.Sprintf("item %q referenced in a bundle was not found in the registry", name))
	}

	for _, it := range res.Valid {
		itemPath, err := cat.ItemPath(it)
		if err != nil {
			o.log.Warn("item path escapes the registry, skipping", "item", it.Name, "path", it.Path)
			report.Warn(it.Name, fmt.Sprintf("path %q escapes the registry; skipping", it.Path))
			continue
		}
		if !o.files.Exists(itemPath) {
			o.log.Warn("path not found, skipping", "item", it.Name, "path", it.Path)
			report.Warn(it.Name, fmt.Sprintf("path not found: %s; skipping", it.Path))
			continue
		}

		o.log.Info("installing", "item", it.Name)
		sub, err := o.installer.InstallLocal(InstallRequest{
			Path:    itemPath,
			Source:  itemSource(it),
			Kind:    it.Kind,
			Version: it.Version,
			Agents:  agents,
			Force:   opts.Force,
		})
		if err != nil {
			report.Add(Result{Item: it.Name, Status: StatusFailed, Err: err, Message: err.Error()})
			continue
		}
		report.Merge(sub)
	}
	return report, nil
}

func (o *Orchestrator) selectItems(cat *catalog.Catalog, opts AddOptions, report *Report) ([]catalog.Item, error) {
	switch {
	case len(opts.Items) > 0:
		found, unknown := cat.Select(opts.Items)
		if len(unknown) > 0 {
			report.Warn("", "the following items were not found in the registry: "+strings.Join(unknown, ", "))
		}
		if len(found) == 0 {
			report.Warn("", "no matching items found in the registry")
		}
		return found, nil

	case opts.All:
		return append([]catalog.Item(nil), cat.Items...), nil
	}

	if !opts.Agents.Interactive || o.sel == nil {
		return nil, ErrNotInteractive
	}

	cfg, err := o.cm.Load()
	if err != nil {
		return nil, err
	}
	installed := cfg.InstalledNames()

	choices := make([]Choice, len(cat.Items))
	for i, it := range cat.Items {
		choices[i] = Choice{
			Label:   it.Name,
			Detail:  it.Description,
			Tag:     string(it.Kind),
			Value:   it.Name,
			Checked: installed[it.Name],
		}
	}
	values, err := o.sel.Select("Select skills/workflows to install:", choices)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		report.Warn("", "no items selected")
		return nil, nil
	}

	found, _ := cat.Select(values)
	return found, nil
}

// downloadFile fetches url into a fresh temp dir as name.
func (o *Orchestrator) downloadFile(ctx context.Context, rawURL, name string) (string, func(), error) {
	o.log.Debug("downloading file", "url", rawURL)
	data, err := o.fetch(ctx, rawURL)
	if err != nil {
		return "", nil, err
	}

	dir, cleanup, err := o.tempDir("mountd-file-")
	if err != nil {
		return "", nil, err
	}
	p := filepath.Join(dir, name)
	if err := afero.WriteFile(o.files.Fs(), p, data, 0o644); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("saving %s: %w", name, err)
	}
	return p, cleanup, nil
}

// downloadArchive fetches and extracts a repository archive and returns its
// single root directory.
func (o *Orchestrator) downloadArchive(ctx context.Context, zipURL string) (string, func(), error) {
	dir, cleanup, err := o.extractTo(ctx, zipURL)
	if err != nil {
		return "", nil, err
	}
	root, ok := FindRootDir(o.files.Fs(), dir)
	if !ok {
		cleanup()
		return "", nil, fmt.Errorf("empty archive or no root directory found in %s", zipURL)
	}
	return root, cleanup, nil
}

func (o *Orchestrator) extractTo(ctx context.Context, zipURL string) (string, func(), error) {
	o.log.Debug("downloading archive", "url", zipURL)
	data, err := o.fetch(ctx, zipURL)
	if err != nil {
		return "", nil, err
	}

	dir, cleanup, err := o.tempDir("mountd-zip-")
	if err != nil {
		return "", nil, err
	}
	if err := ExtractZip(o.files.Fs(), data, dir); err != nil {
		cleanup()
		return "", nil, err
	}
	return dir, cleanup, nil
}

func (o *Orchestrator) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if o.fetcher == nil {
		return nil, errors.New("remote sources are unavailable: no fetcher configured")
	}
	return o.fetcher.Fetch(ctx, rawURL)
}

func (o *Orchestrator) tempDir(prefix string) (string, func(), error) {
	fsys := o.files.Fs()
	dir, err := afero.TempDir(fsys, "", prefix)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}
	return dir, func() { _ = fsys.RemoveAll(dir) }, nil
}

// absPath resolves p against the project directory and expands a leading ~.
func (o *Orchestrator) absPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(o.cm.Dir(), p)
	}
	return filepath.Clean(p)
}

// rawFileName picks a file name for a downloaded raw URL.
func rawFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "skill.md"
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "skill.md"
	}
	return name
}
