// Package tui implements the interactive prompts used by the mountd CLI.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mountd-cli/mountd/internal/core"
)

// Prompter is a core.Selector backed by a bubbletea checkbox list.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading keys from in and drawing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

var _ core.Selector = (*Prompter)(nil)

// Select shows the choices and blocks until the user confirms or cancels.
func (p *Prompter) Select(title string, choices []core.Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	prog := tea.NewProgram(newCheckboxModel(title, choices),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return result(final)
}

func result(final tea.Model) ([]string, error) {
	m, ok := final.(checkboxModel)
	if !ok || m.canceled {
		return nil, core.ErrSelectionCanceled
	}
	return m.selected(), nil
}
