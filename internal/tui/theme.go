package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#A78BFA") // Light purple
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorDanger    = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	checkedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)

// tagStyles colors the badge of a choice by item kind.
var tagStyles = map[string]lipgloss.Style{
	"skill":    lipgloss.NewStyle().Foreground(colorSecondary),
	"workflow": lipgloss.NewStyle().Foreground(colorWarning),
	"bundle":   lipgloss.NewStyle().Foreground(colorSuccess),
}

// Status marks used by the CLI when printing reports.
var (
	SuccessMark = lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
	SkipMark    = lipgloss.NewStyle().Foreground(colorMuted).Render("-")
	WarnMark    = lipgloss.NewStyle().Foreground(colorWarning).Render("!")
	FailMark    = lipgloss.NewStyle().Foreground(colorDanger).Render("✗")
)

// Muted renders s in the secondary text color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Tag renders a kind badge, falling back to the muted style.
func Tag(tag string) string {
	if tag == "" {
		return ""
	}
	style, ok := tagStyles[tag]
	if !ok {
		style = mutedStyle
	}
	return style.Render("[" + tag + "]")
}
