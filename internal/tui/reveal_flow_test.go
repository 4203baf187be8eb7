package tui

import (
	"strings"
	"testing"

	"grimoire-cli/internal/store"
)

func TestReveal_SealedCard_FlipsThenOpensAfterDelay(t *testing.T) {
	m := newTestGallery(t)
	if m.view != viewGallery {
		t.Fatalf("expected gallery view, got %v", m.view)
	}

	cardID := m.visible[0].ID
	mAny, cmd := m.Update(keyMsg("enter"))
	m = mAny.(appModel)
	if cmd == nil {
		t.Fatalf("expected a delayed open command for a sealed card")
	}
	if m.modal != modalNone {
		t.Fatalf("detail must not open before the flip delay, got modal %v", m.modal)
	}
	if !m.session().Settings.Seen(cardID) {
		t.Fatalf("expected card %d marked seen immediately on flip", cardID)
	}

	// The timer fires with the current sequence number.
	mAny, _ = m.Update(openDetailMsg{cardID: cardID, seq: m.revealSeq})
	m = mAny.(appModel)
	if m.modal != modalCardDetail {
		t.Fatalf("expected card detail modal after delay, got %v", m.modal)
	}

	loaded := store.LoadSettings()
	if !loaded.Seen(cardID) {
		t.Fatalf("expected reveal of card %d to be persisted", cardID)
	}
}

func TestReveal_AlreadySeenCard_OpensImmediately(t *testing.T) {
	m := newTestGallery(t)
	m.session().Reveal(m.visible[0].ID)

	mAny, _ := m.Update(keyMsg("enter"))
	m = mAny.(appModel)
	if m.modal != modalCardDetail {
		t.Fatalf("expected immediate detail modal for a seen card, got %v", m.modal)
	}
	if m.detailIdx != 0 {
		t.Fatalf("expected detailIdx 0, got %d", m.detailIdx)
	}
}

func TestReveal_StaleTimerDoesNotOpenDetail(t *testing.T) {
	m := newTestGallery(t)
	cardID := m.visible[0].ID

	mAny, _ := m.Update(keyMsg("enter"))
	m = mAny.(appModel)
	staleSeq := m.revealSeq

	// The user moves on before the timer fires.
	mAny, _ = m.Update(keyMsg("right"))
	m = mAny.(appModel)
	mAny, _ = m.Update(keyMsg("enter"))
	m = mAny.(appModel)

	mAny, _ = m.Update(openDetailMsg{cardID: cardID, seq: staleSeq})
	m = mAny.(appModel)
	if m.modal == modalCardDetail && m.visible[m.detailIdx].ID == cardID {
		t.Fatalf("stale timer must not open card %d", cardID)
	}
}

func TestHeader_CounterReflectsProgress(t *testing.T) {
	m := newTestGallery(t)
	if view := m.View(); !strings.Contains(view, "0 / 4 revealed") {
		t.Fatalf("expected fresh counter in header, got:\n%s", view)
	}

	m.session().Reveal(m.visible[0].ID)
	if view := m.View(); !strings.Contains(view, "1 / 4 revealed") {
		t.Fatalf("expected counter to advance, got:\n%s", view)
	}

	// Revealing the same card again must not double count.
	m.session().Reveal(m.visible[0].ID)
	if view := m.View(); !strings.Contains(view, "1 / 4 revealed") {
		t.Fatalf("expected counter unchanged on repeat reveal, got:\n%s", view)
	}
}

func TestDeckView_EnterDealsCards(t *testing.T) {
	m := newTestApp(t)
	if m.view != viewDeck {
		t.Fatalf("expected deck view after activation, got %v", m.view)
	}
	m = press(t, m, "enter")
	if m.view != viewGallery {
		t.Fatalf("expected gallery after dealing, got %v", m.view)
	}
	if len(m.visible) != 4 {
		t.Fatalf("expected all 4 cards visible, got %d", len(m.visible))
	}
}
