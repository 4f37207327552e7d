package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#FF6600")
	dim    = lipgloss.Color("#8b949e")
	faint  = lipgloss.Color("#484f58")

	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9"))
	textOnlyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922"))
	hoverStyle     = lipgloss.NewStyle().Foreground(accent).Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(faint)
	infoHoverStyle = lipgloss.NewStyle().Foreground(dim)
	twinStyle      = lipgloss.NewStyle().Foreground(faint)
	twinHoverStyle = lipgloss.NewStyle().Foreground(accent)
	badgeStyle     = lipgloss.NewStyle().Foreground(accent)
	menuStyle      = lipgloss.NewStyle().Foreground(dim)
	checkedStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
	detailStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Foreground(dim).
			Padding(0, 1).
			MarginLeft(3)
)
