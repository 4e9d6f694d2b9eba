package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9AA5CE"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)
