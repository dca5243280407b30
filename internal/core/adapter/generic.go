package adapter

import "github.com/spf13/afero"

// Generic is the fallback adapter. It always detects and installs into the
// project-local .agent/ directory.
type Generic struct {
	BaseAdapter
}

// NewGeneric creates the fallback adapter.
func NewGeneric(fsys afero.Fs) *Generic {
	return &Generic{BaseAdapter{
		fs:           fsys,
		name:         "generic",
		displayName:  "Generic / Other",
		markers:      []string{".agent"},
		skillsDir:    ".agent/skills",
		workflowsDir: ".agent/workflows",
		always:       true,
	}}
}
