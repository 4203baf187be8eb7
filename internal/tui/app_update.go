package tui

import (
	"fmt"
	"time"

	"grimoire-cli/internal/album"
	"grimoire-cli/internal/audio"
	"grimoire-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.commentsList.SetSize(modalBodyWidth(m.width), 12)
		return m, nil

	case dataLoadedMsg:
		m.holder.s = album.NewSession(msg.data, store.LoadSettings(), time.Now(), m.errs)
		m.ready = true
		m.dataErr = ""
		m.pickSubtitle()
		items := make([]list.Item, 0, len(msg.data.UIText.CommentCategories))
		for _, cat := range msg.data.UIText.CommentCategories {
			items = append(items, categoryItem{cat: cat})
		}
		m.commentsList.SetItems(items)
		m.visible = m.session().Index().Query("")
		return m, nil

	case dataFailedMsg:
		m.errs.Record("dataLoad", msg.err)
		m.dataErr = msg.err.Error()
		return m, nil

	case audioReadyMsg:
		return m, nil

	case counterMsg:
		if msg.err != nil {
			m.errs.Record("counter", msg.err)
			return m, nil
		}
		m.counterText = fmt.Sprintf("visit %d", msg.count)
		return m, nil

	case subtitleTickMsg:
		if m.ready {
			m.pickSubtitle()
		}
		return m, subtitleTickCmd()

	case legalAutoOpenMsg:
		if m.ready && m.view != viewActivation && m.modal == modalNone &&
			!m.session().Settings.LegalAccepted && m.session().Data.LegalText != nil {
			m.openModal(modalLegal)
		}
		return m, nil

	case openDetailMsg:
		// A stale timer must not reopen a detail view the user navigated away
		// from.
		if msg.seq != m.revealSeq || !m.ready {
			return m, nil
		}
		if idx, ok := m.visibleIndex(msg.cardID); ok {
			m.detailIdx = idx
			m.openModal(modalCardDetail)
			m.audio.Play(audio.CueRoll)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.modal == modalComments && m.commentsStage == commentsStageCategories {
		var cmd tea.Cmd
		m.commentsList, cmd = m.commentsList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.minibufferText = ""

	if m.view == viewActivation {
		return m.updateActivationKey(msg)
	}
	if m.modal != modalNone {
		return m.updateModalKey(msg)
	}
	if m.searching {
		return m.updateSearchKey(msg)
	}
	if m.panelOpen {
		return m.updatePanelKey(msg)
	}

	// Keys shared by the deck and gallery views.
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.audio.Play(audio.CueButton)
		m.panelOpen = true
		m.panelIdx = 0
		return m, nil
	case "c":
		return m.openComments()
	case "v":
		if m.session().Data.Changelog != nil {
			m.audio.Play(audio.CueLog)
			m.openModal(modalChangelog)
		}
		return m, nil
	case "L":
		if m.session().Data.LegalText != nil {
			m.audio.Play(audio.CueLog)
			m.openModal(modalLegal)
		}
		return m, nil
	}

	if m.view == viewDeck {
		switch msg.String() {
		case "enter", " ":
			m.dealCards()
		}
		return m, nil
	}
	return m.updateGalleryKey(msg)
}

func (m appModel) updateActivationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", " ":
		// The gate opens only once the data document has loaded; a failed
		// load leaves the whole app locked.
		if m.ready && m.dataErr == "" {
			cmd := m.activate()
			return m, cmd
		}
	case "r":
		if m.dataErr != "" {
			m.dataErr = ""
			return m, fetchDataCmd(m.cfg.DataSource)
		}
	}
	return m, nil
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalChangelog:
		switch msg.String() {
		case "esc", "enter", "q":
			m.closeModal()
		}
		return m, nil

	case modalLegal:
		switch msg.String() {
		case "esc", "enter", "q":
			// Dismissing the notice is what records acceptance.
			m.session().AcceptLegal()
			m.closeModal()
		}
		return m, nil

	case modalCardDetail:
		return m.updateDetailKey(msg)

	case modalComments:
		return m.updateCommentsKey(msg)

	case modalConfirmRevealAll, modalConfirmSealAll, modalConfirmReset:
		return m.updateConfirmKey(msg)
	}
	return m, nil
}

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		m.closeModal()
		return m, nil
	}
	// Browsing is a pure viewer: it never touches the seen set, so a card
	// navigated past stays face down in the gallery.
	switch msg.String() {
	case "esc", "enter", "q":
		m.closeModal()
	case "left", "h":
		m.detailIdx = (m.detailIdx - 1 + len(m.visible)) % len(m.visible)
		m.audio.Play(audio.CueRoll)
	case "right", "l":
		m.detailIdx = (m.detailIdx + 1) % len(m.visible)
		m.audio.Play(audio.CueRoll)
	}
	return m, nil
}

func (m appModel) updateCommentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentsStage == commentsStageThread {
		switch msg.String() {
		case "esc":
			m.commentsStage = commentsStageCategories
			m.threadURL = ""
		case "q":
			m.closeModal()
		case "enter", "o":
			if err := openInBrowser(m.threadURL); err != nil {
				m.errs.Record("openThread", err)
				m.minibufferText = "Could not open browser: " + err.Error()
			} else {
				m.minibufferText = "Opened thread in browser"
			}
		case "y":
			if err := copyToClipboard(m.threadURL); err != nil {
				m.errs.Record("copyThread", err)
				m.minibufferText = "Copy failed: " + err.Error()
			} else {
				m.minibufferText = "Thread URL copied"
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		item, ok := m.commentsList.SelectedItem().(categoryItem)
		if !ok {
			return m, nil
		}
		url, err := m.cfg.Comments.ThreadURL(item.cat.Name)
		if err != nil {
			m.errs.Record("commentThread", err)
			m.minibufferText = err.Error()
			return m, nil
		}
		m.audio.Play(audio.CueButton)
		m.threadURL = url
		m.commentsStage = commentsStageThread
		return m, nil
	}
	var cmd tea.Cmd
	m.commentsList, cmd = m.commentsList.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeModal()
		return m, nil
	case "tab", "left", "right", "h", "l":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus != confirmFocusConfirm {
			m.closeModal()
			return m, nil
		}
		kind := m.modal
		m.closeModal()
		switch kind {
		case modalConfirmRevealAll:
			n := m.session().RevealAll()
			m.audio.Play(audio.CueLog)
			m.applySearch()
			m.refreshRecent()
			m.minibufferText = fmt.Sprintf("Revealed %d cards", n)
		case modalConfirmSealAll:
			m.session().ClearAllSeen()
			m.reloadSession()
			m.minibufferText = "All cards sealed"
		case modalConfirmReset:
			if err := store.ResetSettings(); err != nil {
				m.errs.Record("resetSettings", err)
			}
			m.reloadSession()
			m.minibufferText = "Settings reset to defaults"
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.searching = false
		m.applySearch()
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m appModel) updatePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.panelRows()
	switch msg.String() {
	case "esc", "s", "q":
		m.audio.Play(audio.CueButton)
		m.panelOpen = false
		return m, nil
	case "up", "k":
		if m.panelIdx > 0 {
			m.panelIdx--
		}
		return m, nil
	case "down", "j":
		if m.panelIdx < len(rows)-1 {
			m.panelIdx++
		}
		return m, nil
	case "left", "h":
		m.cyclePanelValue(rows[m.panelIdx], -1)
		return m, nil
	case "right", "l":
		m.cyclePanelValue(rows[m.panelIdx], +1)
		return m, nil
	case "enter", " ":
		return m.activatePanelRow(rows[m.panelIdx])
	}
	return m, nil
}

// cyclePanelValue steps a value row. Every change persists immediately.
func (m *appModel) cyclePanelValue(row panelRow, dir int) {
	s := m.session()
	switch row.kind {
	case panelRowTheme:
		s.SetThemeColor(cycleOption(ThemeSwatches, s.Settings.ThemeColor, dir))
		m.audio.Play(audio.CueButton)
	case panelRowCardBack:
		s.SetCardBack(cycleOption(cardBackOptions, s.Settings.CardBack, dir))
		m.audio.Play(audio.CueButton)
	case panelRowAura:
		s.SetAuraEffect(cycleOption(AuraEffects, s.Settings.AuraEffect, dir))
		m.audio.Play(audio.CueButton)
	case panelRowVolume:
		s.SetMasterVolume(s.Settings.MasterVolume + float64(dir)*0.1)
		// Preview the new level right away.
		m.audio.Play(audio.CueButton)
	case panelRowMute:
		s.SetSoundMuted(row.cue, !s.Settings.SoundMuted(row.cue))
	}
}

func cycleOption(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}

func (m appModel) activatePanelRow(row panelRow) (tea.Model, tea.Cmd) {
	switch row.kind {
	case panelRowMute:
		s := m.session()
		s.SetSoundMuted(row.cue, !s.Settings.SoundMuted(row.cue))
		return m, nil
	case panelRowRevealAll:
		m.audio.Play(audio.CueButton)
		m.openModal(modalConfirmRevealAll)
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case panelRowSealAll:
		m.audio.Play(audio.CueButton)
		m.openModal(modalConfirmSealAll)
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case panelRowReset:
		m.audio.Play(audio.CueButton)
		m.openModal(modalConfirmReset)
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case panelRowLegal:
		if m.session().Data.LegalText != nil {
			m.audio.Play(audio.CueLog)
			m.openModal(modalLegal)
		}
		return m, nil
	case panelRowDebugCopy:
		info := m.errs.DebugInfo(m.session().Settings)
		if err := copyToClipboard(info); err != nil {
			m.errs.Record("copyDebug", err)
			m.minibufferText = "Copy failed: " + err.Error()
		} else {
			m.minibufferText = "Debug info copied"
		}
		return m, nil
	default:
		m.cyclePanelValue(row, +1)
		return m, nil
	}
}

func (m appModel) updateGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.galleryColumns()
	switch msg.String() {
	case "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applySearch()
			return m, nil
		}
		m.view = viewDeck
		return m, nil
	case "/":
		m.searching = true
		cmd := m.searchInput.Focus()
		return m, cmd
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(+1)
	case "up", "k":
		m.moveCursor(-cols)
	case "down", "j":
		m.moveCursor(+cols)
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "enter", " ":
		return m.revealOrOpen()
	}
	return m, nil
}

func (m *appModel) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.cursor = next
}

// revealOrOpen handles selecting a card in the gallery. A sealed card flips
// first and its detail view opens after the flip delay; a revealed card opens
// immediately.
func (m appModel) revealOrOpen() (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	card := m.visible[m.cursor]
	outcome := m.session().Reveal(card.ID)
	m.revealSeq++
	if outcome.AlreadySeen {
		m.detailIdx = m.cursor
		m.openModal(modalCardDetail)
		m.audio.Play(audio.CueRoll)
		return m, nil
	}
	m.refreshRecent()
	m.audio.Play(audio.CueFlip)
	seq := m.revealSeq
	return m, tea.Tick(m.cfg.revealDelay(), func(time.Time) tea.Msg {
		return openDetailMsg{cardID: card.ID, seq: seq}
	})
}

func (m appModel) openComments() (tea.Model, tea.Cmd) {
	if len(m.session().Data.UIText.CommentCategories) == 0 {
		return m, nil
	}
	m.audio.Play(audio.CueButton)
	m.openModal(modalComments)
	// The modal always reopens at the category chooser.
	m.commentsStage = commentsStageCategories
	m.threadURL = ""
	m.commentsList.Select(0)
	return m, nil
}

// openModal is the single entry point for raising an overlay. At most one of
// the settings panel and a modal may be open at a time, so the panel always
// drops first.
func (m *appModel) openModal(kind modalKind) {
	m.panelOpen = false
	m.modal = kind
}

func (m *appModel) closeModal() {
	if m.modal == modalLegal {
		m.session().AcceptLegal()
	}
	m.modal = modalNone
	m.commentsStage = commentsStageCategories
	m.threadURL = ""
	// Closing interrupts any pending flip-to-detail timer.
	m.revealSeq++
	m.audio.Play(audio.CueButton)
}

func (m *appModel) visibleIndex(cardID int) (int, bool) {
	for i, c := range m.visible {
		if c.ID == cardID {
			return i, true
		}
	}
	return 0, false
}
