package tui

import (
	"testing"
	"time"

	"grimoire-cli/internal/comments"
	"grimoire-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func testAppData() *model.AppData {
	return &model.AppData{
		Cards: []model.Card{
			{ID: 1, Title: "The Hermit", Description: "A lantern in the dark."},
			{ID: 2, Title: "The Tower", Description: "Everything falls."},
			{ID: 3, Title: "The Moon", Description: "Not all is as it seems."},
			{ID: 4, Title: "The Sun", Description: "Plain daylight."},
		},
		UIText: model.UIText{
			IdentifyPrompt:   "Identify your card.",
			DynamicSubtitles: []string{"a subtitle"},
			CommentCategories: []model.CommentCategory{
				{Name: "General", Icon: "💬", Description: "Anything goes"},
				{Name: "Card Lore", Icon: "📜", Description: "Card talk"},
			},
		},
		Changelog: &model.Changelog{Version: "5.0", Changes: []string{"New deck"}},
		LegalText: &model.LegalText{Title: "Notice", Content: "<p>Be kind.</p>"},
	}
}

// newTestApp returns a model that has loaded data and sits on the deck view,
// with settings isolated in a temp dir and colors forced off for stable
// string assertions.
func newTestApp(t *testing.T) appModel {
	t.Helper()
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	m := newAppModel(Config{
		DataSource:  "unused",
		Comments:    comments.DefaultConfig(),
		RevealDelay: time.Millisecond,
	})
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = mAny.(appModel)
	mAny, _ = m.Update(dataLoadedMsg{data: testAppData()})
	m = mAny.(appModel)
	mAny, _ = m.Update(keyMsg("enter"))
	return mAny.(appModel)
}

// newTestGallery is newTestApp after dealing the cards.
func newTestGallery(t *testing.T) appModel {
	t.Helper()
	m := newTestApp(t)
	mAny, _ := m.Update(keyMsg("enter"))
	return mAny.(appModel)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		mAny, _ := m.Update(keyMsg(k))
		m = mAny.(appModel)
	}
	return m
}

func panelIndexOf(t *testing.T, m appModel, kind panelRowKind) int {
	t.Helper()
	for i, row := range m.panelRows() {
		if row.kind == kind {
			return i
		}
	}
	t.Fatalf("no panel row of kind %v", kind)
	return -1
}
