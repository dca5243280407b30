package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mountd-cli/mountd/internal/core/adapter"
)

// Remover uninstalls a recorded skill or workflow from every configured agent.
type Remover struct {
	files *Files
	cm    *ConfigManager
	reg   *adapter.Registry
	log   *slog.Logger
}

// NewRemover creates a Remover for the project of cm.
func NewRemover(files *Files, cm *ConfigManager, reg *adapter.Registry, log *slog.Logger) *Remover {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Remover{files: files, cm: cm, reg: reg, log: log}
}

// Remove deletes the record for name, then deletes the path each configured
// agent uses for the recorded kind. Returns ErrNotInstalled when there is
// no record. Paths that do not exist are ignored.
func (r *Remover) Remove(name string) (*Report, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	rec, err := r.cm.RemoveInstalled(name)
	if err != nil {
		return nil, err
	}

	cfg, err := r.cm.Load()
	if err != nil {
		return nil, err
	}

	report := &Report{}
	workDir := r.cm.Dir()
	for _, agentName := range cfg.Agents {
		a, ok := r.reg.ByName(agentName)
		if !ok {
			r.log.Warn("unknown agent in config", "agent", agentName)
			continue
		}

		target := a.SkillPath(workDir, rec.Name)
		if rec.IsWorkflow() {
			target = a.WorkflowPath(workDir, rec.Name)
		}
		if !r.files.Exists(target) {
			continue
		}
		res := Result{Item: rec.Name, Agent: a.DisplayName(), Target: target}
		if err := r.files.Remove(target); err != nil {
			res.Status = StatusFailed
			res.Err = err
			res.Message = fmt.Sprintf("failed to delete %s: %v", target, err)
		} else {
			res.Status = StatusRemoved
			r.cleanupItemDir(target, rec.Name)
		}
		report.Add(res)
	}
	return report, nil
}

// cleanupItemDir removes the per-item directory some agents wrap a single
// workflow file in, once it is empty.
func (r *Remover) cleanupItemDir(target, name string) {
	parent := filepath.Dir(target)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if filepath.Base(parent) != stem {
		return
	}
	entries, err := afero.ReadDir(r.files.Fs(), parent)
	if err == nil && len(entries) == 0 {
		_ = r.files.Fs().Remove(parent)
	}
}
