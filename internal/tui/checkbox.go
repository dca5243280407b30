package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/mountd-cli/mountd/internal/core"
)

// checkboxModel is a single-screen multi-select list.
// Enter confirms the checked rows; esc, q or ctrl+c cancels.
type checkboxModel struct {
	title    string
	choices  []core.Choice
	checked  []bool
	cursor   int
	width    int
	help     help.Model
	done     bool
	canceled bool
}

func newCheckboxModel(title string, choices []core.Choice) checkboxModel {
	checked := make([]bool, len(choices))
	for i, c := range choices {
		checked[i] = c.Checked
	}
	return checkboxModel{
		title:   title,
		choices: choices,
		checked: checked,
		help:    help.New(),
	}
}

func (m checkboxModel) Init() tea.Cmd {
	return nil
}

func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if len(m.checked) > 0 {
				m.checked[m.cursor] = !m.checked[m.cursor]
			}
		case key.Matches(msg, keys.ToggleAll):
			m.toggleAll()
		}
	}
	return m, nil
}

// toggleAll unchecks everything if any row is checked, otherwise checks all.
func (m *checkboxModel) toggleAll() {
	anyChecked := false
	for _, c := range m.checked {
		if c {
			anyChecked = true
			break
		}
	}
	for i := range m.checked {
		m.checked[i] = !anyChecked
	}
}

// selected returns the values of the checked rows in choice order.
func (m checkboxModel) selected() []string {
	var out []string
	for i, c := range m.choices {
		if m.checked[i] {
			out = append(out, c.Value)
		}
	}
	return out
}

func (m checkboxModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		check := "[ ]"
		if m.checked[i] {
			check = checkedStyle.Render("[x]")
		}

		prefix := "  "
		label := normalItemStyle.Render(c.Label)
		if i == m.cursor {
			prefix = "> "
			label = selectedItemStyle.Render(c.Label)
		}

		line := prefix + check + " " + label
		if c.Tag != "" {
			line += " " + Tag(c.Tag)
		}
		if c.Detail != "" {
			line += " " + mutedStyle.Render(c.Detail)
		}
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "…")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
