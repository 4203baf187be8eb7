package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())

	got := LoadSettings()
	want := DefaultSettings()
	if got.ThemeColor != want.ThemeColor || got.CardBack != want.CardBack ||
		got.AuraEffect != want.AuraEffect || got.MasterVolume != want.MasterVolume {
		t.Fatalf("defaults not returned for missing file: got %+v", got)
	}
	if len(got.SeenCards) != 0 || got.LegalAccepted {
		t.Fatalf("expected empty progress, got %+v", got)
	}
}

func TestLoadSettings_CorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIMOIRE_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings()
	if got.ThemeColor != DefaultSettings().ThemeColor {
		t.Fatalf("expected defaults for corrupt file, got %+v", got)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())

	s := DefaultSettings()
	s.ThemeColor = "#00ff00"
	s.CardBack = "skins/alt.webp"
	s.AuraEffect = "beta"
	s.MasterVolume = 0.25
	s.MutedSounds = []string{"flip", "roll"}
	s.SeenCards = []int{3, 1, 7}
	s.LegalAccepted = true
	if err := SaveSettings(s); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings()
	if got.ThemeColor != s.ThemeColor || got.CardBack != s.CardBack || got.AuraEffect != s.AuraEffect {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if got.MasterVolume != s.MasterVolume || !got.LegalAccepted {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	// Seen set comes back sorted and deduplicated.
	if len(got.SeenCards) != 3 || got.SeenCards[0] != 1 || got.SeenCards[1] != 3 || got.SeenCards[2] != 7 {
		t.Fatalf("seen cards = %v, want [1 3 7]", got.SeenCards)
	}
}

func TestLoadSettings_MergesOverDefaults(t *testing.T) {
	// A blob written before new fields existed resolves those fields to their
	// defaults after merge.
	dir := t.TempDir()
	t.Setenv("GRIMOIRE_CONFIG_DIR", dir)
	blob := []byte(`{"themeColor":"#112233","seenCards":[2,2,1]}`)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), blob, 0o600); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings()
	if got.ThemeColor != "#112233" {
		t.Fatalf("stored field lost in merge: %+v", got)
	}
	def := DefaultSettings()
	if got.CardBack != def.CardBack || got.AuraEffect != def.AuraEffect || got.MasterVolume != def.MasterVolume {
		t.Fatalf("absent fields should keep defaults: %+v", got)
	}
	if len(got.SeenCards) != 2 || got.SeenCards[0] != 1 || got.SeenCards[1] != 2 {
		t.Fatalf("seen cards not deduped/sorted: %v", got.SeenCards)
	}
}

func TestLoadSettings_ClampsVolume(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIMOIRE_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"masterVolume":3.5}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(); got.MasterVolume != 1 {
		t.Fatalf("volume not clamped: %v", got.MasterVolume)
	}
}

func TestResetSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIMOIRE_CONFIG_DIR", dir)

	s := DefaultSettings()
	s.SeenCards = []int{1}
	if err := SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	if err := ResetSettings(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.json")); !os.IsNotExist(err) {
		t.Fatalf("settings file should be gone, stat err = %v", err)
	}
	// Resetting twice is fine.
	if err := ResetSettings(); err != nil {
		t.Fatal(err)
	}
}

func TestSettings_SeenSetSemantics(t *testing.T) {
	s := DefaultSettings()
	if !s.MarkSeen(7) {
		t.Fatal("first MarkSeen should report a change")
	}
	if s.MarkSeen(7) {
		t.Fatal("second MarkSeen should be a no-op")
	}
	if len(s.SeenCards) != 1 {
		t.Fatalf("seen set grew on duplicate: %v", s.SeenCards)
	}
}

func TestSettings_MuteSetSemantics(t *testing.T) {
	s := DefaultSettings()
	s.SetSoundMuted("flip", true)
	s.SetSoundMuted("flip", true)
	if len(s.MutedSounds) != 1 || !s.SoundMuted("flip") {
		t.Fatalf("mute set = %v", s.MutedSounds)
	}
	s.SetSoundMuted("flip", false)
	if s.SoundMuted("flip") || len(s.MutedSounds) != 0 {
		t.Fatalf("unmute failed: %v", s.MutedSounds)
	}
}
