package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Reading  lipgloss.Style
	Shortage lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Width(12),
		Focused:  lipgloss.NewStyle().Width(12).Bold(true).Foreground(lipgloss.Color("63")),
		Reading:  lipgloss.NewStyle().Faint(true),
		Shortage: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
