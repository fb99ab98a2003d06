package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	accentColor = lipgloss.Color("#61AFEF")
	mutedColor  = lipgloss.Color("#6C6C6C")
	volumeColor = lipgloss.Color("#98C379")
	warnColor   = lipgloss.Color("#E5C07B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(volumeColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	warnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)
