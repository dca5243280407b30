package adapter

import "github.com/spf13/afero"

// Cline implements the Adapter interface for Cline.
// Skills live under .cline/ while workflows go to .clinerules/workflows/.
type Cline struct {
	BaseAdapter
}

// NewCline creates a configured Cline adapter.
func NewCline(fsys afero.Fs) *Cline {
	return &Cline{BaseAdapter{
		fs:           fsys,
		name:         "cline",
		displayName:  "Cline",
		markers:      []string{".cline", ".clinerules"},
		skillsDir:    ".cline/skills",
		workflowsDir: ".clinerules/workflows",
	}}
}
