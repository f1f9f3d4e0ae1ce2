package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8C00")).
			Bold(true).
			Align(lipgloss.Center)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("#DDDDDD"))

	emptyTileStyle = tileStyle.
			BorderForeground(lipgloss.Color("#444444")).
			Foreground(lipgloss.Color("#444444"))

	cursorTileStyle = tileStyle.
			BorderForeground(lipgloss.Color("#FFD700")).
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	hintTileStyle = tileStyle.
			BorderForeground(lipgloss.Color("#00FF7F")).
			Foreground(lipgloss.Color("#00FF7F"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("#FFD700"))

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)
)
