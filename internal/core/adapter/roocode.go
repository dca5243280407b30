package adapter

import "github.com/spf13/afero"

// RooCode implements the Adapter interface for Roo Code.
type RooCode struct {
	BaseAdapter
}

// NewRooCode creates a configured Roo Code adapter.
func NewRooCode(fsys afero.Fs) *RooCode {
	return &RooCode{BaseAdapter{
		fs:           fsys,
		name:         "roocode",
		displayName:  "Roo Code",
		markers:      []string{".roo"},
		skillsDir:    ".roo/skills",
		workflowsDir: ".roo/workflows",
	}}
}
