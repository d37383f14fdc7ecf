package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().Bold(true)
	dropZoneStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2).Bold(true)

	toastStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	toastInfoStyle  = toastStyle.BorderForeground(lipgloss.Color("12"))
	toastWarnStyle  = toastStyle.BorderForeground(lipgloss.Color("11"))
	toastErrorStyle = toastStyle.BorderForeground(lipgloss.Color("9"))
)
