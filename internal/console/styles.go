package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt lipgloss.Style
	errMsg lipgloss.Style
	result lipgloss.Style
	grid   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{prompt: plain, errMsg: plain, result: plain, grid: plain}
	}
	return styles{
		prompt: lipgloss.NewStyle().Bold(true),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		grid:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
