// Package core provides the business logic for mountd.
// It has zero UI dependencies and is independently testable.
package core

import "github.com/mountd-cli/mountd/internal/core/catalog"

// Config is the project install-state document stored at .mountdrc.json.
type Config struct {
	Agents    []string         `json:"agents,omitempty"`
	Paths     *Paths           `json:"paths,omitempty"`
	Defaults  *Defaults        `json:"defaults,omitempty"`
	Installed []InstalledSkill `json:"installed,omitempty"`
}

// Paths holds optional per-project path overrides. They are preserved on
// save but not interpreted.
type Paths struct {
	Skills    string `json:"skills,omitempty"`
	Workflows string `json:"workflows,omitempty"`
}

// Defaults holds per-project default flags. Overwrite seeds --force.
type Defaults struct {
	Overwrite bool `json:"overwrite,omitempty"`
	// Validate is preserved on save but not interpreted.
	Validate bool `json:"validate,omitempty"`
}

// InstalledSkill is the record kept for every installed skill or workflow.
type InstalledSkill struct {
	Name        string       `json:"name"`
	Source      string       `json:"source"`
	Version     string       `json:"version,omitempty"`
	Kind        catalog.Kind `json:"type,omitempty"`
	InstalledAt string       `json:"installedAt"` // RFC 3339
}

// IsWorkflow reports whether the record is a workflow. Records written
// before the type field existed are skills.
func (s InstalledSkill) IsWorkflow() bool { return s.Kind == catalog.KindWorkflow }
