package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) renderCardDetailModal() string {
	if len(m.visible) == 0 {
		return ""
	}
	idx := m.detailIdx
	if idx < 0 || idx >= len(m.visible) {
		idx = 0
	}
	card := m.visible[idx]

	accent := accentColor(m.session().Settings.ThemeColor)
	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(card.Title)
	if card.ID == m.session().FeaturedCardID() {
		title = glyphFeatured() + " " + title
	}

	desc := renderMarkdown(softenHTML(card.Description), modalBodyWidth(m.width)-2)

	pos := styleMuted().Render(fmt.Sprintf("%d of %d", idx+1, len(m.visible)))
	help := styleMuted().Render("←/→: browse   esc: close")

	body := title + "\n\n" + desc + "\n\n" + pos + "   " + help
	return renderModalBox(m.width, fmt.Sprintf("Card #%03d", card.ID), body)
}
