package tui

import "github.com/charmbracelet/lipgloss"

var accent = lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
	Bold(true).
	Margin(1, 0, 2, 0)

var menuItemStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Margin(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#262626", Dark: "#d9d9d9"})

var selectedMenuItemStyle = menuItemStyle.
	Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}).
	Background(accent).
	Bold(true)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"}).
	Margin(2, 0, 0, 0)

var labelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#859900", Dark: "#50fa7b"}).
	Bold(true)

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#859900", Dark: "#50fa7b"}).
	Bold(true)

var warningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#f1fa8c"}).
	Bold(true)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#dc322f", Dark: "#ff5555"}).
	Bold(true).
	Margin(1, 0)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

// GetAdaptiveStyles returns styles that adapt to terminal width
func GetAdaptiveStyles(width, height int) (titleStyle, formStyle, helpStyle lipgloss.Style) {
	maxWidth := width - 4

	adaptiveTitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
		Bold(true).
		Margin(1, 0, 2, 0).
		Align(lipgloss.Center)

	adaptiveFormStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Margin(1, 0)

	adaptiveHelpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"}).
		Margin(2, 0, 0, 0)

	if maxWidth > 0 {
		adaptiveTitleStyle = adaptiveTitleStyle.Width(maxWidth)
		adaptiveFormStyle = adaptiveFormStyle.Width(maxWidth)
		adaptiveHelpStyle = adaptiveHelpStyle.Width(maxWidth)
	}

	return adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle
}
