package adapter

import "github.com/spf13/afero"

// OpenCode implements the Adapter interface for OpenCode.
// Workflows become OpenCode commands.
type OpenCode struct {
	BaseAdapter
}

// NewOpenCode creates a configured OpenCode adapter.
func NewOpenCode(fsys afero.Fs) *OpenCode {
	return &OpenCode{BaseAdapter{
		fs:           fsys,
		name:         "opencode",
		displayName:  "OpenCode",
		markers:      []string{".opencode", "opencode.json"},
		skillsDir:    ".opencode/skills",
		workflowsDir: ".opencode/commands",
	}}
}
