package adapter

import "github.com/spf13/afero"

// Trae implements the Adapter interface for Trae.
type Trae struct {
	BaseAdapter
}

// NewTrae creates a configured Trae adapter.
func NewTrae(fsys afero.Fs) *Trae {
	return &Trae{BaseAdapter{
		fs:           fsys,
		name:         "trae",
		displayName:  "Trae",
		markers:      []string{".trae"},
		skillsDir:    ".trae/skills",
		workflowsDir: ".trae/workflows",
	}}
}
