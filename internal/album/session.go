// Package album owns the mutable state of one album session: the loaded
// deck, the user settings, and the reveal state machine. The TUI and CLI are
// projections of a Session; they never keep reveal state of their own.
package album

import (
	"context"
	"time"

	"grimoire-cli/internal/errlog"
	"grimoire-cli/internal/model"
	"grimoire-cli/internal/search"
	"grimoire-cli/internal/store"
)

// DefaultBackSkins is the number of built-in card-back skins cycled by
// gallery position when the user has not picked a custom skin.
const DefaultBackSkins = 3

// Session is the application context: constructed at startup, mutated by
// handlers, torn down on full reload.
type Session struct {
	Data     *model.AppData
	Settings store.Settings

	today  time.Time
	errors *errlog.Log
	index  *search.Index
}

func NewSession(d *model.AppData, s store.Settings, today time.Time, errs *errlog.Log) *Session {
	if errs == nil {
		errs = errlog.New()
	}
	return &Session{Data: d, Settings: s, today: today, errors: errs}
}

func (s *Session) Errors() *errlog.Log { return s.errors }

// Index returns the fuzzy title index for the loaded deck, built on first
// use. The deck never changes within a session, so one build suffices.
func (s *Session) Index() *search.Index {
	if s.index == nil {
		s.index = search.NewIndex(s.Data.Cards)
	}
	return s.index
}

// FeaturedCardID returns the deterministic card of the day. The seed is
// year*1000 + month*100 + day with a zero-based month, so the pick is stable
// for a calendar day and changes only when the date does.
func (s *Session) FeaturedCardID() int {
	if len(s.Data.Cards) == 0 {
		return -1
	}
	seed := s.today.Year()*1000 + int(s.today.Month()-1)*100 + s.today.Day()
	return s.Data.Cards[seed%len(s.Data.Cards)].ID
}

// RevealOutcome reports what a Reveal call did.
type RevealOutcome struct {
	// AlreadySeen is true when the card was revealed before this call; the
	// detail view still opens, but without the flip transition.
	AlreadySeen bool
}

// Reveal marks the card as seen. Revealing an already-seen card is a no-op
// for state. New reveals are persisted immediately and appended to the local
// history log (best-effort).
func (s *Session) Reveal(cardID int) RevealOutcome {
	if _, ok := s.Data.FindCard(cardID); !ok {
		return RevealOutcome{AlreadySeen: true}
	}
	if !s.Settings.MarkSeen(cardID) {
		return RevealOutcome{AlreadySeen: true}
	}
	s.persist("reveal")
	if err := store.AppendReveal(context.Background(), cardID); err != nil {
		s.errors.Record("revealLog", err)
	}
	return RevealOutcome{}
}

// RevealAll marks every card as seen and returns how many were newly
// revealed. Re-running has no further effect.
func (s *Session) RevealAll() int {
	n := 0
	for _, c := range s.Data.Cards {
		if s.Settings.MarkSeen(c.ID) {
			n++
		}
	}
	if n > 0 {
		s.persist("revealAll")
	}
	return n
}

// ClearAllSeen empties the seen set and the history log. The caller is
// expected to reload the session afterwards so every derived view recomputes
// from the empty set.
func (s *Session) ClearAllSeen() {
	s.Settings.SeenCards = nil
	s.persist("clearAllSeen")
	if err := store.ClearReveals(context.Background()); err != nil {
		s.errors.Record("revealLog", err)
	}
}

// Counter returns the reveal progress as (seen, total).
func (s *Session) Counter() (seen, total int) {
	return len(s.Settings.SeenCards), len(s.Data.Cards)
}

// CardBackIndex picks the back skin for a face-down card at the given
// gallery position. With the default setting the built-in skins cycle by
// position; a user-selected skin applies everywhere (index -1).
func (s *Session) CardBackIndex(position int) int {
	if s.Settings.CardBack != store.CardBackDefault {
		return -1
	}
	if position < 0 {
		position = 0
	}
	return position % DefaultBackSkins
}

// AcceptLegal records legal acceptance. Acceptance is implied by dismissing
// the legal modal, not by opening it.
func (s *Session) AcceptLegal() {
	if s.Settings.LegalAccepted {
		return
	}
	s.Settings.LegalAccepted = true
	s.persist("acceptLegal")
}

func (s *Session) SetThemeColor(c string) {
	s.Settings.ThemeColor = c
	s.persist("setThemeColor")
}

func (s *Session) SetCardBack(back string) {
	s.Settings.CardBack = back
	s.persist("setCardBack")
}

func (s *Session) SetAuraEffect(effect string) {
	s.Settings.AuraEffect = effect
	s.persist("setAuraEffect")
}

func (s *Session) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.Settings.MasterVolume = v
	s.persist("setMasterVolume")
}

func (s *Session) SetSoundMuted(name string, muted bool) {
	s.Settings.SetSoundMuted(name, muted)
	s.persist("setSoundMuted")
}

func (s *Session) persist(origin string) {
	if err := store.SaveSettings(s.Settings); err != nil {
		s.errors.Record("saveSettings:"+origin, err)
	}
}
