package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(width int, title string) string {
	logo := `▄▖▖ ▄▖▄▖▖▗
▙▘▌ ▌▌▌ ▙▘
▙▘▙▖▙▌▙▖▛▖pad`

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)

	var headerContent string
	if title != "" {
		titleRendered := titleStyle.Render("\n\n" + title)
		contentWidth := width - 2
		gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(logoRendered)
		if gap < 1 {
			gap = 1
		}
		headerContent = lipgloss.JoinHorizontal(
			lipgloss.Top,
			titleRendered,
			lipgloss.NewStyle().Width(gap).Render(""),
			logoRendered,
		)
	} else {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right)
		headerContent = rightAlign.Render(logoRendered)
	}

	return headerPadding.Render(headerContent)
}
