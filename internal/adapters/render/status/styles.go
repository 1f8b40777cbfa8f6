package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	card       lipgloss.Style
	address    lipgloss.Style
	badge      lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	hint       lipgloss.Style
	balanceKey lipgloss.Style
	balance    lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	link       lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
		address:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")).Padding(0, 1),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		hint:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		balanceKey: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		balance:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		link:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("111")),
	}
}
