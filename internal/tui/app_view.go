package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Grimório"

func (m appModel) View() string {
	if !m.seenWindowSize {
		return ""
	}
	if m.view == viewActivation {
		return m.renderActivation()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	var main string
	switch m.view {
	case viewDeck:
		main = m.renderDeck()
	default:
		main = m.renderGallery()
	}

	if m.panelOpen {
		panelW := 36
		mainW := m.width - panelW - 2
		if mainW < 20 {
			mainW = 20
		}
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			normalizePane(main, mainW, 0),
			" ",
			m.renderSettingsPanel(panelW),
		)
	}
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	page := b.String()
	if m.modal != modalNone {
		return overlayModal(m.width, m.height, m.renderModal())
	}
	return page
}

func (m appModel) renderActivation() string {
	var body string
	switch {
	case m.dataErr != "":
		body = lipgloss.NewStyle().Foreground(ac("160", "196")).Render("The grimoire could not be opened.") +
			"\n\n" + styleMuted().Render(m.dataErr) +
			"\n\n" + styleMuted().Render("r: retry   q: quit")
	case !m.ready:
		body = styleMuted().Render("Unsealing the grimoire…")
	default:
		body = "The grimoire is sealed." +
			"\n\n" + styleMuted().Render("enter: break the seal   q: quit")
	}
	box := renderModalBox(m.width, appTitle, body)
	return overlayModal(m.width, m.height, box)
}

func (m appModel) renderHeader() string {
	accent := accentColor(m.session().Settings.ThemeColor)
	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(appTitle)

	parts := []string{title}
	if m.subtitle != "" {
		parts = append(parts, styleMuted().Render(m.subtitle))
	}
	seen, total := m.session().Counter()
	parts = append(parts, lipgloss.NewStyle().Foreground(colorChromeMutedFg).
		Render(fmt.Sprintf("%d / %d revealed", seen, total)))
	if m.counterText != "" {
		parts = append(parts, styleMuted().Render(m.counterText))
	}

	line := strings.Join(parts, "   ")
	rule := lipgloss.NewStyle().Foreground(accent).
		Render(auraRule(m.session().Settings.AuraEffect, m.width))

	if m.searching || m.searchInput.Value() != "" {
		return line + "\n" + m.searchInput.View() + "\n" + rule
	}
	return line + "\n" + rule
}

func (m appModel) renderDeck() string {
	prompt := m.session().Data.UIText.IdentifyPrompt
	if prompt == "" {
		prompt = "A deck of sealed cards awaits."
	}

	back := styleMuted().Render(strings.Repeat(cardBackPattern(0), cardInnerWidth/2))
	deck := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFeaturedBorder).
		Padding(1, 2).
		Render(back + "\n" + back + "\n" + back)

	body := lipgloss.JoinVertical(lipgloss.Center,
		deck,
		"",
		prompt,
		styleMuted().Render("enter: deal the cards"),
	)
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, body)
}

func (m appModel) renderFooter() string {
	var help string
	switch {
	case m.searching:
		help = "enter: apply   esc: clear"
	case m.panelOpen:
		help = "↑/↓: row   ←/→: change   enter: select   esc: close"
	case m.view == viewDeck:
		help = "enter: deal   s: settings   c: comments   v: changelog   q: quit"
	default:
		help = "↑↓←→: move   enter: reveal   /: search   s: settings   c: comments   v: changelog   q: quit"
	}
	line := styleMuted().Render(help)
	if m.minibufferText != "" {
		line = lipgloss.NewStyle().Foreground(colorSelectedFg).Render(m.minibufferText) + "  " + line
	}
	return line
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalChangelog:
		return m.renderChangelogModal()
	case modalLegal:
		return m.renderLegalModal()
	case modalComments:
		return m.renderCommentsModal()
	case modalCardDetail:
		return m.renderCardDetailModal()
	case modalConfirmRevealAll:
		return renderConfirmModal(m.width, "Reveal every card?",
			"All sealed cards will flip face up at once. There is no surprise left after this.",
			"Reveal all", "Cancel", m.confirmFocus)
	case modalConfirmSealAll:
		return renderConfirmModal(m.width, "Seal every card?",
			"Your reveal progress and history will be erased. The cards go back face down.",
			"Seal all", "Cancel", m.confirmFocus)
	case modalConfirmReset:
		return renderConfirmModal(m.width, "Reset settings?",
			"Theme, card backs, sounds and reveal progress all return to their defaults.",
			"Reset", "Cancel", m.confirmFocus)
	}
	return ""
}
