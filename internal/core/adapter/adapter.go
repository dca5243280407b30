// Package adapter defines the Adapter abstraction for mountd.
//
// An Adapter represents an AI coding agent (Claude Code, Cursor, Windsurf,
// etc.). Each adapter knows how to tell whether the agent is configured in a
// project and where skills and workflows go under that agent's conventions.
// Adapters are immutable and safe to share for the whole run.
package adapter

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Adapter defines how a coding agent lays out skills and workflows.
type Adapter interface {
	// Identity
	Name() string        // machine name: "claude", "cursor"
	DisplayName() string // human name: "Claude Code", "Cursor"

	// Detection. Absence of a marker is false, never an error.
	Detect(workDir string) bool
	DetectionSignals() []string

	// Paths. Pure functions of their arguments; they never touch the filesystem.
	SkillPath(workDir, skillName string) string
	WorkflowPath(workDir, workflowName string) string
}

// Registry is a fixed, ordered set of adapters. Order is the default
// pre-selection order, and a more specific marker must come before the more
// general one it overlaps with (Antigravity before Gemini). The generic
// fallback is always last.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry holding the given adapters in order.
func NewRegistry(adapters ...Adapter) *Registry {
	return &Registry{adapters: adapters}
}

// Default returns the canonical registry of every supported agent.
// Detection probes go through fsys.
func Default(fsys afero.Fs) *Registry {
	return NewRegistry(
		NewAntigravity(fsys),
		NewGemini(fsys),
		NewCursor(fsys),
		NewCopilot(fsys),
		NewOpenCode(fsys),
		NewClaude(fsys),
		NewKiloCode(fsys),
		NewCline(fsys),
		NewRooCode(fsys),
		NewTrae(fsys),
		NewWindsurf(fsys),
		NewGeneric(fsys),
	)
}

// All returns every adapter in registry order.
func (r *Registry) All() []Adapter {
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

// ByName returns the adapter with the given machine name, if registered.
func (r *Registry) ByName(name string) (Adapter, bool) {
	for _, a := range r.adapters {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// ByNames resolves a list of adapter names to Adapter values.
// Returns an error if any name is unknown.
func (r *Registry) ByNames(names []string) ([]Adapter, error) {
	result := make([]Adapter, 0, len(names))
	for _, name := range names {
		a, ok := r.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown agent %q; available: %s",
				name, strings.Join(Names(r.adapters), ", "))
		}
		result = append(result, a)
	}
	return result, nil
}

// Detect returns every adapter whose markers are present in workDir, in
// registry order. The generic adapter always matches, so the result is never
// empty for the default registry.
func (r *Registry) Detect(workDir string) []Adapter {
	var detected []Adapter
	for _, a := range r.adapters {
		if a.Detect(workDir) {
			detected = append(detected, a)
		}
	}
	return detected
}

// Names returns the machine names of the given adapters.
func Names(adapters []Adapter) []string {
	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Name()
	}
	return names
}

// DisplayNames returns the display names of the given adapters.
func DisplayNames(adapters []Adapter) []string {
	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.DisplayName()
	}
	return names
}
