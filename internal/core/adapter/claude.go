package adapter

import "github.com/spf13/afero"

// Claude implements the Adapter interface for Claude Code.
// Workflows become slash commands under .claude/commands/.
type Claude struct {
	BaseAdapter
}

// NewClaude creates a configured Claude Code adapter.
func NewClaude(fsys afero.Fs) *Claude {
	return &Claude{BaseAdapter{
		fs:           fsys,
		name:         "claude",
		displayName:  "Claude Code",
		markers:      []string{".claude", "CLAUDE.md"},
		skillsDir:    ".claude/skills",
		workflowsDir: ".claude/commands",
	}}
}
