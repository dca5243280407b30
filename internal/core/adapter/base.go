package adapter

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// BaseAdapter provides the common "marker files in, two directories out"
// behavior. Individual adapters embed this and override methods as needed.
type BaseAdapter struct {
	fs           afero.Fs
	name         string
	displayName  string
	markers      []string // project-relative files or dirs, any one is enough
	skillsDir    string   // project-relative skill directory
	workflowsDir string   // project-relative workflow directory
	always       bool     // detect unconditionally (fallback adapter)
}

func (b *BaseAdapter) Name() string        { return b.name }
func (b *BaseAdapter) DisplayName() string { return b.displayName }

func (b *BaseAdapter) DetectionSignals() []string {
	return b.markers
}

func (b *BaseAdapter) Detect(workDir string) bool {
	if b.always {
		return true
	}
	for _, m := range b.markers {
		if pathExists(b.fs, filepath.Join(workDir, m)) {
			return true
		}
	}
	return false
}

func (b *BaseAdapter) SkillPath(workDir, skillName string) string {
	return filepath.Join(workDir, b.skillsDir, skillName)
}

func (b *BaseAdapter) WorkflowPath(workDir, workflowName string) string {
	return filepath.Join(workDir, b.workflowsDir, workflowName)
}

// SkillsDir returns the project-relative skill directory.
func (b *BaseAdapter) SkillsDir() string { return b.skillsDir }

// WorkflowsDir returns the project-relative workflow directory.
func (b *BaseAdapter) WorkflowsDir() string { return b.workflowsDir }

func pathExists(fsys afero.Fs, path string) bool {
	if fsys == nil {
		return false
	}
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
