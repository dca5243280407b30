package adapter

import "github.com/spf13/afero"

// KiloCode implements the Adapter interface for Kilo Code.
type KiloCode struct {
	BaseAdapter
}

// NewKiloCode creates a configured Kilo Code adapter.
func NewKiloCode(fsys afero.Fs) *KiloCode {
	return &KiloCode{BaseAdapter{
		fs:           fsys,
		name:         "kilocode",
		displayName:  "Kilo Code",
		markers:      []string{".kilocode"},
		skillsDir:    ".kilocode/skills",
		workflowsDir: ".kilocode/workflows",
	}}
}
