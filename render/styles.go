package render

import "github.com/charmbracelet/lipgloss"

// Cell palette.
var (
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0c3547")).Background(lipgloss.Color("#0c3547"))
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	finishStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00"))
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40cee3"))
	mudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5a2b"))
	forestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#228b22"))
	waterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e90ff"))
	openStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// styleFor maps a rendered glyph to its style.
func styleFor(glyph rune) lipgloss.Style {
	switch glyph {
	case '#':
		return wallStyle
	case 'S':
		return startStyle
	case 'F':
		return finishStyle
	case GlyphPath:
		return pathStyle
	case GlyphVisited:
		return visitedStyle
	case 'm':
		return mudStyle
	case 'f':
		return forestStyle
	case 'w':
		return waterStyle
	}
	return openStyle
}
