package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	replyStyle  = lipgloss.NewStyle().PaddingLeft(2)
	errorStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	exitStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)
