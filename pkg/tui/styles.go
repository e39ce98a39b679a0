package tui

import "github.com/charmbracelet/lipgloss/v2"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))

	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

	emergencyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Border(lipgloss.DoubleBorder()).Padding(1, 4)
)
