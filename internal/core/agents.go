package core

import (
	"errors"
	"fmt"

	"github.com/mountd-cli/mountd/internal/core/adapter"
)

// ErrNoAgentSelected is returned when agent selection yields nothing.
var ErrNoAgentSelected = errors.New("at least one AI agent must be selected")

// AgentOptions controls how target agents are chosen.
type AgentOptions struct {
	Names       []string // explicit --agents list; skips detection and prompt
	Yes         bool     // accept the pre-selection without prompting
	Interactive bool     // a terminal is available for prompting
}

// SelectAgents decides which adapters an install targets and saves the
// choice as the project's preferred agents.
//
// The pre-selection is the configured agent list, or every detected adapter
// when none is configured. The user confirms it in a prompt listing every
// adapter, unless opts says not to prompt.
func SelectAgents(reg *adapter.Registry, cm *ConfigManager, sel Selector, opts AgentOptions) ([]adapter.Adapter, error) {
	if len(opts.Names) > 0 {
		chosen, err := reg.ByNames(opts.Names)
		if err != nil {
			return nil, err
		}
		if err := cm.SetAgents(adapter.Names(chosen)); err != nil {
			return nil, fmt.Errorf("saving agent selection: %w", err)
		}
		return chosen, nil
	}

	cfg, err := cm.Load()
	if err != nil {
		return nil, err
	}

	preselected := make(map[string]bool)
	for _, name := range cfg.Agents {
		preselected[name] = true
	}
	if len(preselected) == 0 {
		for _, a := range reg.Detect(cm.Dir()) {
			preselected[a.Name()] = true
		}
	}

	all := reg.All()
	choices := make([]Choice, len(all))
	for i, a := range all {
		choices[i] = Choice{Label: a.DisplayName(), Value: a.Name(), Checked: preselected[a.Name()]}
	}

	var selected []string
	if opts.Yes || !opts.Interactive || sel == nil {
		selected = Prechecked(choices)
	} else {
		selected, err = sel.Select("Which AI agents are you using?", choices)
		if err != nil {
			return nil, err
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoAgentSelected
	}

	chosen, err := reg.ByNames(selected)
	if err != nil {
		return nil, err
	}
	if err := cm.SetAgents(selected); err != nil {
		return nil, fmt.Errorf("saving agent selection: %w", err)
	}
	return chosen, nil
}
