// Package views renders controller state as terminal text. Views read state
// and never change it.
package views

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6B7280")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles is the set of styles every view draws with.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Panel    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(Muted),
		Error: lipgloss.NewStyle().
			Foreground(Destructive),
		Success: lipgloss.NewStyle().
			Foreground(Accent),
		Warning: lipgloss.NewStyle().
			Foreground(Warning),
		Header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Reverse(true),
		Focused: lipgloss.NewStyle().
			Foreground(Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1),
	}
}
