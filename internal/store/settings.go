package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
)

const settingsFileName = "settings.json"

// settingsVersion tracks the on-disk schema generation. Older blobs (or blobs
// from newer builds with extra fields) still load: stored fields are merged
// over defaults, so missing keys resolve to their default values.
const settingsVersion = 5

// Settings is the single persisted user record. It is mutated by the current
// session and written back on every mutation.
type Settings struct {
	Version       int      `json:"version"`
	ThemeColor    string   `json:"themeColor"`
	CardBack      string   `json:"cardBack"`
	AuraEffect    string   `json:"auraEffect"`
	MasterVolume  float64  `json:"masterVolume"`
	MutedSounds   []string `json:"mutedSounds"`
	SeenCards     []int    `json:"seenCards"`
	LegalAccepted bool     `json:"legalAccepted"`
}

// CardBackDefault cycles the built-in back skins by gallery position.
const CardBackDefault = "default"

func DefaultSettings() Settings {
	return Settings{
		Version:      settingsVersion,
		ThemeColor:   "#dcbaff",
		CardBack:     CardBackDefault,
		AuraEffect:   "alfa",
		MasterVolume: 0.7,
	}
}

// Seen reports whether the card id has been revealed.
func (s *Settings) Seen(id int) bool {
	for _, v := range s.SeenCards {
		if v == id {
			return true
		}
	}
	return false
}

// MarkSeen adds id to the seen set. Returns false when the id was already
// present (the set is unchanged).
func (s *Settings) MarkSeen(id int) bool {
	if s.Seen(id) {
		return false
	}
	s.SeenCards = append(s.SeenCards, id)
	sort.Ints(s.SeenCards)
	return true
}

// SoundMuted reports whether the named cue is in the muted set.
func (s *Settings) SoundMuted(name string) bool {
	for _, v := range s.MutedSounds {
		if v == name {
			return true
		}
	}
	return false
}

// SetSoundMuted adds or removes name from the muted set, preserving set
// semantics.
func (s *Settings) SetSoundMuted(name string, muted bool) {
	if muted {
		if !s.SoundMuted(name) {
			s.MutedSounds = append(s.MutedSounds, name)
			sort.Strings(s.MutedSounds)
		}
		return
	}
	out := s.MutedSounds[:0]
	for _, v := range s.MutedSounds {
		if v != name {
			out = append(out, v)
		}
	}
	s.MutedSounds = out
}

func settingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// LoadSettings reads the persisted record and merges it over defaults.
// It never fails to the caller: a missing, unreadable or corrupt file yields
// the defaults unchanged.
func LoadSettings() Settings {
	def := DefaultSettings()
	path, err := settingsPath()
	if err != nil {
		return def
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return def
	}
	// Unmarshal into a copy of the defaults: fields present in the blob
	// overwrite, absent fields keep their default values.
	merged := def
	if err := json.Unmarshal(b, &merged); err != nil {
		return def
	}
	merged.Version = settingsVersion
	if merged.MasterVolume < 0 {
		merged.MasterVolume = 0
	}
	if merged.MasterVolume > 1 {
		merged.MasterVolume = 1
	}
	sort.Ints(merged.SeenCards)
	merged.SeenCards = dedupeInts(merged.SeenCards)
	return merged
}

// SaveSettings serializes the full record. Storage failures are returned for
// the caller to record; they must never be surfaced as blocking errors.
func SaveSettings(s Settings) error {
	dir, err := ensureConfigDir()
	if err != nil {
		return err
	}
	s.Version = settingsVersion
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, settingsFileName)
	return atomicWriteFile(dir, settingsFileName+".*.tmp", path, b, 0o600)
}

// ResetSettings deletes the stored record. The caller is responsible for
// reinitializing in-memory state (in practice the session is reloaded).
func ResetSettings() error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func dedupeInts(in []int) []int {
	if len(in) < 2 {
		return in
	}
	out := in[:1]
	for _, v := range in[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
