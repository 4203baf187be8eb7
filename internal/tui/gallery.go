package tui

import (
	"fmt"
	"strings"

	"grimoire-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Card cell geometry. cardInnerWidth is the content width inside the border.
const (
	cardInnerWidth = 14
	cardCellWidth  = cardInnerWidth + 4
)

func (m *appModel) galleryColumns() int {
	cols := (m.width - 2) / (cardCellWidth + 1)
	if cols < 1 {
		cols = 1
	}
	if cols > 5 {
		cols = 5
	}
	return cols
}

// renderCardCell draws one card. Sealed cards show their back skin, revealed
// cards show the title. The featured card carries its own border color until
// it has been revealed.
func (m *appModel) renderCardCell(card model.Card, position int, selected bool) string {
	s := m.session()
	seen := s.Settings.Seen(card.ID)
	featured := card.ID == s.FeaturedCardID()

	var lines []string
	if seen {
		title := card.Title
		st := lipgloss.NewStyle().Foreground(colorSeenFg).Bold(selected)
		lines = []string{
			"",
			st.Render(glyphSeen() + " " + title),
			"",
		}
	} else {
		pattern := customBackPattern()
		if idx := s.CardBackIndex(position); idx >= 0 {
			pattern = cardBackPattern(idx)
		}
		row := strings.Repeat(pattern, cardInnerWidth/2)
		back := styleMuted().Render(row)
		label := fmt.Sprintf("#%03d", card.ID)
		if featured {
			label = glyphFeatured() + " " + label
		}
		lines = []string{
			back,
			lipgloss.NewStyle().Foreground(colorChromeMutedFg).Render(label),
			back,
		}
	}

	body := make([]string, len(lines))
	for i, ln := range lines {
		body[i] = normalizePane(ln, cardInnerWidth, 1)
	}

	borderColor := colorCardBorder
	if featured && !seen {
		borderColor = colorFeaturedBorder
	}
	if selected {
		borderColor = colorSelectedBorder
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))
}

func (m *appModel) renderGallery() string {
	if len(m.visible) == 0 {
		return styleMuted().Padding(1, 2).Render("No cards match the search.")
	}
	cols := m.galleryColumns()
	var rows []string
	for start := 0; start < len(m.visible); start += cols {
		end := start + cols
		if end > len(m.visible) {
			end = len(m.visible)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCardCell(m.visible[i], i, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
