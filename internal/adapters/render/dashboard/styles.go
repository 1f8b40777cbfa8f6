package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	label     lipgloss.Style
	errorText lipgloss.Style
	flash     lipgloss.Style
	help      lipgloss.Style
	link      lipgloss.Style
}

func newStyles() styles {
	return styles{
		label:     lipgloss.NewStyle().Bold(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		help:      lipgloss.NewStyle().Faint(true),
		link:      lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("111")),
	}
}
