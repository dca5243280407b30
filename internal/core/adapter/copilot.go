package adapter

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Copilot implements the Adapter interface for GitHub Copilot.
type Copilot struct {
	BaseAdapter
}

// NewCopilot creates a configured GitHub Copilot adapter.
func NewCopilot(fsys afero.Fs) *Copilot {
	return &Copilot{BaseAdapter{
		fs:          fsys,
		name:        "copilot",
		displayName: "GitHub Copilot",
		markers:     []string{".github/copilot-instructions.md", ".github/skills"},
		skillsDir:   ".github/skills",
	}}
}

// WorkflowPath overrides BaseAdapter: Copilot has no workflow directory, so a
// workflow is installed as a skill whose SKILL.md is the workflow file.
// ".github/workflows" belongs to GitHub Actions and must not be touched.
func (c *Copilot) WorkflowPath(workDir, workflowName string) string {
	stem := strings.TrimSuffix(workflowName, filepath.Ext(workflowName))
	return filepath.Join(workDir, c.skillsDir, stem, "SKILL.md")
}
