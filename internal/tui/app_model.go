package tui

import (
	"context"
	"math/rand"
	"time"

	"grimoire-cli/internal/album"
	"grimoire-cli/internal/audio"
	"grimoire-cli/internal/comments"
	"grimoire-cli/internal/counter"
	"grimoire-cli/internal/data"
	"grimoire-cli/internal/errlog"
	"grimoire-cli/internal/model"
	"grimoire-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultRevealDelay is the pause between flipping an unseen card and opening
// its detail view.
const DefaultRevealDelay = 650 * time.Millisecond

const subtitleInterval = 10 * time.Second

const legalAutoOpenDelay = 500 * time.Millisecond

// Config wires the album's external surfaces into the TUI.
type Config struct {
	// DataSource is the app data document: an http(s) URL or a file path.
	DataSource string
	// AudioSources maps cue names to their asset locations.
	AudioSources map[string]string
	// CounterBaseURL is the visit counter namespace; empty disables the call.
	CounterBaseURL string
	// Comments selects the comment thread provider.
	Comments comments.Config
	// RevealDelay overrides DefaultRevealDelay when > 0.
	RevealDelay time.Duration
}

func (c Config) revealDelay() time.Duration {
	if c.RevealDelay > 0 {
		return c.RevealDelay
	}
	return DefaultRevealDelay
}

type appModel struct {
	cfg    Config
	errs   *errlog.Log
	holder *sessionHolder
	audio  *audio.Service

	width          int
	height         int
	seenWindowSize bool

	view view
	// dataErr holds the blocking activation error; while set, nothing else
	// attaches.
	dataErr string
	// ready flips once the data document has loaded.
	ready bool

	modal        modalKind
	confirmFocus confirmModalFocus

	// Gallery state.
	visible []model.Card
	cursor  int
	// detailIdx indexes visible while the card detail modal is open.
	detailIdx int
	revealSeq int

	searchInput textinput.Model
	searching   bool

	panelOpen bool
	panelIdx  int

	commentsList  list.Model
	commentsStage commentsStage
	threadURL     string

	subtitle    string
	counterText string
	recent      []model.RevealEvent

	minibufferText string

	rng *rand.Rand
}

func (m *appModel) session() *album.Session { return m.holder.s }

func newAppModel(cfg Config) appModel {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	errs := errlog.New()
	holder := &sessionHolder{}

	m := appModel{
		cfg:    cfg,
		errs:   errs,
		holder: holder,
		audio:  audio.NewService(&audio.BellEngine{}, holder, errs),
		view:   viewActivation,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search cards"
	m.searchInput.CharLimit = 80
	m.searchInput.Width = 32

	m.commentsList = newCategoriesList()

	return m
}

func newCategoriesList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Choose a category"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "close modal".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

type categoryItem struct {
	cat model.CommentCategory
}

func (i categoryItem) FilterValue() string { return i.cat.Name }
func (i categoryItem) Title() string       { return i.cat.Icon + " " + i.cat.Name }
func (i categoryItem) Description() string { return i.cat.Description }

func (m appModel) Init() tea.Cmd {
	return fetchDataCmd(m.cfg.DataSource)
}

func fetchDataCmd(source string) tea.Cmd {
	return func() tea.Msg {
		d, err := data.Fetch(context.Background(), source)
		if err != nil {
			return dataFailedMsg{err: err}
		}
		return dataLoadedMsg{data: d}
	}
}

func (m *appModel) loadAudioCmd() tea.Cmd {
	svc := m.audio
	sources := m.cfg.AudioSources
	return func() tea.Msg {
		svc.LoadAll(context.Background(), sources)
		return audioReadyMsg{}
	}
}

func (m *appModel) counterCmd() tea.Cmd {
	base := m.cfg.CounterBaseURL
	if base == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		n, err := counter.Increment(ctx, base)
		return counterMsg{count: n, err: err}
	}
}

func subtitleTickCmd() tea.Cmd {
	return tea.Tick(subtitleInterval, func(time.Time) tea.Msg { return subtitleTickMsg{} })
}

// activate runs once the user breaks the seal on the loaded data: the audio
// batch starts, the counter fires, the subtitle rotator begins, and the legal
// notice self-opens for first-time visitors.
func (m *appModel) activate() tea.Cmd {
	m.view = viewDeck
	cmds := []tea.Cmd{m.loadAudioCmd(), subtitleTickCmd()}
	if c := m.counterCmd(); c != nil {
		cmds = append(cmds, c)
	}
	if !m.session().Settings.LegalAccepted {
		cmds = append(cmds, tea.Tick(legalAutoOpenDelay, func(time.Time) tea.Msg { return legalAutoOpenMsg{} }))
	}
	return tea.Batch(cmds...)
}

// dealCards moves from the face-down deck to the gallery.
func (m *appModel) dealCards() {
	m.audio.Play(audio.CueDeal)
	m.view = viewGallery
	m.visible = m.session().Index().Query("")
	m.cursor = 0
	m.refreshRecent()
}

func (m *appModel) refreshRecent() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	evs, err := store.ReadReveals(ctx, 5)
	if err != nil {
		m.errs.Record("revealLog", err)
		return
	}
	m.recent = evs
}

// applySearch recomputes the visible card set from the current query.
func (m *appModel) applySearch() {
	m.visible = m.session().Index().Query(m.searchInput.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// reloadSession rebuilds the session from stored settings, the TUI's
// equivalent of a full page reload: every derived view recomputes.
func (m *appModel) reloadSession() {
	d := m.session().Data
	m.holder.s = album.NewSession(d, store.LoadSettings(), time.Now(), m.errs)
	m.searchInput.SetValue("")
	m.searching = false
	m.visible = m.session().Index().Query("")
	m.cursor = 0
	m.panelOpen = false
	m.modal = modalNone
	m.refreshRecent()
}

func (m *appModel) pickSubtitle() {
	subs := m.session().Data.UIText.DynamicSubtitles
	if len(subs) == 0 {
		return
	}
	m.subtitle = subs[m.rng.Intn(len(subs))]
}

// panelRows builds the settings panel rows for the loaded cue set.
func (m *appModel) panelRows() []panelRow {
	rows := []panelRow{
		{kind: panelRowTheme},
		{kind: panelRowCardBack},
		{kind: panelRowAura},
		{kind: panelRowVolume},
	}
	for _, cue := range audio.CueNames() {
		rows = append(rows, panelRow{kind: panelRowMute, cue: cue})
	}
	rows = append(rows,
		panelRow{kind: panelRowRevealAll},
		panelRow{kind: panelRowSealAll},
		panelRow{kind: panelRowReset},
		panelRow{kind: panelRowLegal},
		panelRow{kind: panelRowDebugCopy},
	)
	return rows
}

// cardBackOptions are the values cycled by the card-back row: the default
// position-cycled skins plus the named single skins.
var cardBackOptions = []string{store.CardBackDefault, "onyx", "ivory", "ember"}
