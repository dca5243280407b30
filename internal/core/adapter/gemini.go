package adapter

import "github.com/spf13/afero"

// Gemini implements the Adapter interface for Gemini Code Assist.
type Gemini struct {
	BaseAdapter
}

// NewGemini creates a configured Gemini Code Assist adapter.
func NewGemini(fsys afero.Fs) *Gemini {
	return &Gemini{BaseAdapter{
		fs:           fsys,
		name:         "gemini",
		displayName:  "Gemini Code Assist",
		markers:      []string{".gemini"},
		skillsDir:    ".gemini/skills",
		workflowsDir: ".gemini/workflows",
	}}
}
