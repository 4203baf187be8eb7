package tui

import (
	"grimoire-cli/internal/album"
	"grimoire-cli/internal/model"
)

type view int

const (
	// viewActivation is the locked startup screen: data is loading (or has
	// failed) and nothing else is wired up yet.
	viewActivation view = iota
	// viewDeck shows the face-down deck waiting to be dealt.
	viewDeck
	// viewGallery is the album itself.
	viewGallery
)

type modalKind int

const (
	modalNone modalKind = iota
	modalChangelog
	modalLegal
	modalComments
	modalCardDetail
	modalConfirmRevealAll
	modalConfirmSealAll
	modalConfirmReset
)

// commentsStage tracks the comments modal sub-view. Reopening the modal
// always starts back at the category chooser.
type commentsStage int

const (
	commentsStageCategories commentsStage = iota
	commentsStageThread
)

type dataLoadedMsg struct {
	data *model.AppData
}

type dataFailedMsg struct {
	err error
}

type audioReadyMsg struct{}

type counterMsg struct {
	count int
	err   error
}

type subtitleTickMsg struct{}

type legalAutoOpenMsg struct{}

// openDetailMsg fires after the flip-to-detail delay. seq guards against a
// stale timer opening the detail view after the user moved on.
type openDetailMsg struct {
	cardID int
	seq    int
}

// sessionHolder gives long-lived collaborators (the audio service's
// preference reads) a stable path to the current session across reloads.
type sessionHolder struct {
	s *album.Session
}

func (h *sessionHolder) MasterVolume() float64 {
	if h.s == nil {
		return 0
	}
	return h.s.Settings.MasterVolume
}

func (h *sessionHolder) Muted(cue string) bool {
	if h.s == nil {
		return true
	}
	return h.s.Settings.SoundMuted(cue)
}

// Settings panel rows. The panel is a flat cursor over value rows (cycle
// with left/right) and action rows (run with enter).
type panelRowKind int

const (
	panelRowTheme panelRowKind = iota
	panelRowCardBack
	panelRowAura
	panelRowVolume
	panelRowMute
	panelRowRevealAll
	panelRowSealAll
	panelRowReset
	panelRowLegal
	panelRowDebugCopy
)

type panelRow struct {
	kind panelRowKind
	// cue is set for panelRowMute rows.
	cue string
}
