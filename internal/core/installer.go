package core

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mountd-cli/mountd/internal/core/adapter"
	"github.com/mountd-cli/mountd/internal/core/catalog"
)

// ErrSourceNotFound is returned when the path to install does not exist.
var ErrSourceNotFound = errors.New("source path does not exist")

// Installer copies one local skill or workflow into every target agent's
// directory and records it in the install state.
type Installer struct {
	files *Files
	cm    *ConfigManager
	log   *slog.Logger
	now   func() time.Time
}

// NewInstaller creates an Installer writing under the project of cm.
func NewInstaller(files *Files, cm *ConfigManager, log *slog.Logger) *Installer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Installer{files: files, cm: cm, log: log, now: time.Now}
}

// InstallRequest describes one local install.
type InstallRequest struct {
	Path    string       // local file or directory to copy
	Source  string       // recorded origin; defaults to Path
	Kind    catalog.Kind // skill or workflow; defaults to skill
	Version string
	Agents  []adapter.Adapter
	Force   bool // overwrite existing targets
}

// InstallLocal installs req.Path for each agent independently. A failure for
// one agent is reported and does not stop the others.
func (inst *Installer) InstallLocal(req InstallRequest) (*Report, error) {
	if !inst.files.Exists(req.Path) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, req.Path)
	}
	info, err := inst.files.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("inspecting source: %w", err)
	}

	kind := req.Kind
	if kind == "" {
		kind = catalog.KindSkill
	}
	name := filepath.Base(filepath.Clean(req.Path))
	workDir := inst.cm.Dir()

	report := &Report{}
	for _, a := range req.Agents {
		target := a.SkillPath(workDir, name)
		if kind == catalog.KindWorkflow {
			target = a.WorkflowPath(workDir, name)
		}
		inst.log.Debug("install target", "item", name, "agent", a.Name(), "path", target)

		res := Result{Item: name, Agent: a.DisplayName(), Target: target}

		if inst.files.Exists(target) && !req.Force {
			res.Status = StatusSkipped
			res.Message = fmt.Sprintf("%s %q already exists for %s; use --force to overwrite", kindLabel(kind), name, a.DisplayName())
			report.Add(res)
			continue
		}

		if err := inst.copy(req.Path, target, info, kind, req.Force); err != nil {
			res.Status = StatusFailed
			res.Err = err
			res.Message = fmt.Sprintf("failed to install %s for %s: %v", kind, a.DisplayName(), err)
			inst.log.Warn("install failed", "item", name, "agent", a.Name(), "error", err)
			report.Add(res)
			continue
		}

		res.Status = StatusInstalled
		report.Add(res)
	}

	if report.Count(StatusInstalled)+report.Count(StatusSkipped) > 0 {
		source := req.Source
		if source == "" {
			source = req.Path
		}
		rec := InstalledSkill{
			Name:        name,
			Source:      source,
			Version:     req.Version,
			Kind:        kind,
			InstalledAt: inst.now().UTC().Format(time.RFC3339),
		}
		if err := inst.cm.AddInstalled(rec); err != nil {
			return report, fmt.Errorf("recording %s: %w", name, err)
		}
	}

	return report, nil
}

func (inst *Installer) copy(src, target string, info FileInfo, kind catalog.Kind, force bool) error {
	if err := inst.files.EnsureDir(filepath.Dir(target)); err != nil {
		return err
	}

	switch {
	case info.IsFile && kind == catalog.KindWorkflow:
		return inst.files.Copy(src, target, force)
	case info.IsFile:
		if err := inst.files.EnsureDir(target); err != nil {
			return err
		}
		return inst.files.Copy(src, filepath.Join(target, filepath.Base(src)), force)
	default:
		if err := inst.files.EnsureDir(target); err != nil {
			return err
		}
		return inst.files.Copy(src, target, force)
	}
}

func kindLabel(k catalog.Kind) string {
	if k == catalog.KindWorkflow {
		return "Workflow"
	}
	return "Skill"
}
