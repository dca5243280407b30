package adapter

import "github.com/spf13/afero"

// Windsurf implements the Adapter interface for Windsurf.
type Windsurf struct {
	BaseAdapter
}

// NewWindsurf creates a configured Windsurf adapter.
func NewWindsurf(fsys afero.Fs) *Windsurf {
	return &Windsurf{BaseAdapter{
		fs:           fsys,
		name:         "windsurf",
		displayName:  "Windsurf",
		markers:      []string{".windsurfrules", ".windsurf"},
		skillsDir:    ".windsurf/skills",
		workflowsDir: ".windsurf/workflows",
	}}
}
