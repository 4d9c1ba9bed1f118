package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent    = lipgloss.Color("#6C8EBF")
	colorSoft      = lipgloss.Color("#A8DADC")
	colorWarn      = lipgloss.Color("#E63946")
	colorUserText  = lipgloss.Color("#F1FAEE")
	colorAssistant = lipgloss.Color("#8BC34A")
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	statusStyle = lipgloss.NewStyle().Foreground(colorSoft)

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorUserText).
			Background(colorAccent).
			Padding(0, 1)

	userBubbleStyle      = lipgloss.NewStyle().Foreground(colorUserText).Bold(true)
	assistantBubbleStyle = lipgloss.NewStyle().Foreground(colorAssistant)

	circleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Align(lipgloss.Center, lipgloss.Center)

	footerStyle = lipgloss.NewStyle().Italic(true).Foreground(colorWarn)
)
