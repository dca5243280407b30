package adapter

import "github.com/spf13/afero"

// Cursor implements the Adapter interface for Cursor.
type Cursor struct {
	BaseAdapter
}

// NewCursor creates a configured Cursor adapter.
func NewCursor(fsys afero.Fs) *Cursor {
	return &Cursor{BaseAdapter{
		fs:           fsys,
		name:         "cursor",
		displayName:  "Cursor",
		markers:      []string{".cursor", ".cursorrules"},
		skillsDir:    ".cursor/rules",
		workflowsDir: ".cursor/workflows",
	}}
}
