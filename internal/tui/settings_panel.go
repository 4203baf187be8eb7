package tui

import (
	"fmt"
	"strings"

	"grimoire-cli/internal/store"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) renderSettingsPanel(width int) string {
	rows := m.panelRows()

	innerW := width - 4
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Settings"), "")

	for i, row := range rows {
		label, value := m.panelRowText(row)
		line := label
		if value != "" {
			pad := innerW - lipgloss.Width(label) - lipgloss.Width(value)
			if pad < 1 {
				pad = 1
			}
			line = label + strings.Repeat(" ", pad) + value
		}
		st := lipgloss.NewStyle()
		if i == m.panelIdx {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		lines = append(lines, st.Render(normalizePane(line, innerW, 1)))

		// Group separators after the value rows and after the mute toggles.
		if row.kind == panelRowVolume || (row.kind == panelRowMute && i+1 < len(rows) && rows[i+1].kind != panelRowMute) {
			lines = append(lines, "")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (m appModel) panelRowText(row panelRow) (label, value string) {
	s := m.session()
	switch row.kind {
	case panelRowTheme:
		swatch := lipgloss.NewStyle().
			Foreground(accentColor(s.Settings.ThemeColor)).
			Render("██")
		return "Theme", swatch + " " + s.Settings.ThemeColor
	case panelRowCardBack:
		v := s.Settings.CardBack
		if v == store.CardBackDefault {
			v = "cycled"
		}
		return "Card back", v
	case panelRowAura:
		return "Aura", s.Settings.AuraEffect
	case panelRowVolume:
		return "Volume", volumeBar(s.Settings.MasterVolume)
	case panelRowMute:
		state := "on"
		if s.Settings.SoundMuted(row.cue) {
			state = "muted"
		}
		return "Sound: " + row.cue, state
	case panelRowRevealAll:
		return "Reveal all cards…", ""
	case panelRowSealAll:
		return "Seal all cards…", ""
	case panelRowReset:
		return "Reset settings…", ""
	case panelRowLegal:
		return "Legal notice", ""
	case panelRowDebugCopy:
		return "Copy debug info", ""
	}
	return "", ""
}

func volumeBar(v float64) string {
	const steps = 10
	filled := int(v*steps + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > steps {
		filled = steps
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", steps-filled)
	if glyphs() == glyphSetASCII {
		bar = strings.Repeat("#", filled) + strings.Repeat("-", steps-filled)
	}
	return fmt.Sprintf("%s %3.0f%%", bar, v*100)
}
