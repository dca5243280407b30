package core

import "errors"

var (
	// ErrNotInteractive is returned when a choice is required but no
	// terminal is available to ask.
	ErrNotInteractive = errors.New("no interactive terminal; pass item names or --all")
	// ErrSelectionCanceled is returned when the user aborts a prompt.
	ErrSelectionCanceled = errors.New("selection canceled")
)

// Choice is one row of a multi-select prompt.
type Choice struct {
	Label   string
	Detail  string // secondary text shown dimmed after the label
	Tag     string // short category badge, e.g. an item kind
	Value   string
	Checked bool
}

// Selector asks the user to pick a subset of choices. It returns the selected
// values in choice order. An empty result is valid.
type Selector interface {
	Select(title string, choices []Choice) ([]string, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(title string, choices []Choice) ([]string, error)

// Select calls f.
func (f SelectorFunc) Select(title string, choices []Choice) ([]string, error) {
	return f(title, choices)
}

// Prechecked returns the values of the checked choices, as a non-interactive
// selector would.
func Prechecked(choices []Choice) []string {
	var out []string
	for _, c := range choices {
		if c.Checked {
			out = append(out, c.Value)
		}
	}
	return out
}
