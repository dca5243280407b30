package adapter

import "github.com/spf13/afero"

// Antigravity implements the Adapter interface for Antigravity.
// It is detected by .gemini/antigravity/ but installs into the project-local .agent/ tree.
type Antigravity struct {
	BaseAdapter
}

// NewAntigravity creates a configured Antigravity adapter.
func NewAntigravity(fsys afero.Fs) *Antigravity {
	return &Antigravity{BaseAdapter{
		fs:           fsys,
		name:         "antigravity",
		displayName:  "Antigravity",
		markers:      []string{".gemini/antigravity"},
		skillsDir:    ".agent/skills",
		workflowsDir: ".agent/workflows",
	}}
}
