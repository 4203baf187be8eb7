package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// modalBodyWidth returns the usable content width inside a modal box for the
// given terminal width.
func modalBodyWidth(width int) int {
	w := width - 12
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderModalBox renders a titled modal surface. Borders are avoided inside:
// some terminals show background artifacts when nesting bordered components
// inside a surface with a background color.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Padding(0, 1).
		Render(content)

	box := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Render(box)
}

// overlayModal centers the modal over a dimmed backdrop. The backdrop is the
// shared dimming overlay: while any modal is open the page behind it is inert.
func overlayModal(width, height int, modal string) string {
	if width <= 0 || height <= 0 {
		return modal
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(colorMuted))
}
