package tui

import (
	"testing"

	"grimoire-cli/internal/store"
)

func openConfirm(t *testing.T, m appModel, kind panelRowKind) appModel {
	t.Helper()
	if !m.panelOpen {
		m = press(t, m, "s")
	}
	m.panelIdx = panelIndexOf(t, m, kind)
	return press(t, m, "enter")
}

func TestRevealAll_RequiresConfirmation(t *testing.T) {
	m := newTestGallery(t)
	m = openConfirm(t, m, panelRowRevealAll)
	if m.modal != modalConfirmRevealAll {
		t.Fatalf("expected reveal-all confirmation, got %v", m.modal)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatalf("destructive confirmations must default to cancel")
	}

	// Enter on the default (cancel) changes nothing.
	m = press(t, m, "enter")
	if m.modal != modalNone {
		t.Fatalf("expected confirmation closed")
	}
	if seen, _ := m.session().Counter(); seen != 0 {
		t.Fatalf("cancel must not reveal anything, seen=%d", seen)
	}

	m = openConfirm(t, m, panelRowRevealAll)
	m = press(t, m, "tab", "enter")
	seen, total := m.session().Counter()
	if seen != total {
		t.Fatalf("expected every card revealed, got %d/%d", seen, total)
	}
	if got := store.LoadSettings(); len(got.SeenCards) != total {
		t.Fatalf("expected reveal-all persisted, got %d seen", len(got.SeenCards))
	}
}

func TestSealAll_ClearsProgressAndHistory(t *testing.T) {
	m := newTestGallery(t)
	m.session().RevealAll()

	m = openConfirm(t, m, panelRowSealAll)
	if m.modal != modalConfirmSealAll {
		t.Fatalf("expected seal-all confirmation, got %v", m.modal)
	}
	m = press(t, m, "tab", "enter")

	if seen, _ := m.session().Counter(); seen != 0 {
		t.Fatalf("expected empty seen set after sealing, got %d", seen)
	}
	if got := store.LoadSettings(); len(got.SeenCards) != 0 {
		t.Fatalf("expected cleared seen set persisted, got %d", len(got.SeenCards))
	}
	if len(m.recent) != 0 {
		t.Fatalf("expected reveal history cleared, got %d events", len(m.recent))
	}
}

func TestResetSettings_RestoresDefaults(t *testing.T) {
	m := newTestGallery(t)
	m.session().SetThemeColor("#123456")
	m.session().SetMasterVolume(0.1)
	m.session().Reveal(m.visible[0].ID)

	m = openConfirm(t, m, panelRowReset)
	if m.modal != modalConfirmReset {
		t.Fatalf("expected reset confirmation, got %v", m.modal)
	}
	m = press(t, m, "tab", "enter")

	s := m.session().Settings
	def := store.DefaultSettings()
	if s.ThemeColor != def.ThemeColor || s.MasterVolume != def.MasterVolume {
		t.Fatalf("expected default settings after reset, got %+v", s)
	}
	if len(s.SeenCards) != 0 {
		t.Fatalf("expected reveal progress cleared by reset, got %v", s.SeenCards)
	}
}

func TestSettingsPanel_CyclesPersistImmediately(t *testing.T) {
	m := newTestGallery(t)
	m = press(t, m, "s")

	m.panelIdx = panelIndexOf(t, m, panelRowTheme)
	before := m.session().Settings.ThemeColor
	m = press(t, m, "right")
	after := m.session().Settings.ThemeColor
	if before == after {
		t.Fatalf("expected theme swatch to change")
	}
	if got := store.LoadSettings().ThemeColor; got != after {
		t.Fatalf("expected theme persisted, got %q want %q", got, after)
	}

	m.panelIdx = panelIndexOf(t, m, panelRowVolume)
	m = press(t, m, "left")
	if got := m.session().Settings.MasterVolume; got >= 0.7 {
		t.Fatalf("expected volume lowered from default, got %v", got)
	}

	m.panelIdx = panelIndexOf(t, m, panelRowMute)
	cue := m.panelRows()[m.panelIdx].cue
	m = press(t, m, "enter")
	if !m.session().Settings.SoundMuted(cue) {
		t.Fatalf("expected cue %q muted", cue)
	}
	persisted := store.LoadSettings()
	if !persisted.SoundMuted(cue) {
		t.Fatalf("expected mute persisted for %q", cue)
	}
}
