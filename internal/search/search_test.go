package search

import (
	"testing"

	"grimoire-cli/internal/model"
)

func deck() []model.Card {
	return []model.Card{
		{ID: 1, Title: "The Hermit"},
		{ID: 2, Title: "The Tower"},
		{ID: 3, Title: "Wheel of Fortune"},
		{ID: 4, Title: "The Hanged Man"},
		{ID: 5, Title: "Temperance"},
	}
}

func TestQuery_EmptyReturnsFullDeckInOrder(t *testing.T) {
	ix := NewIndex(deck())
	for _, q := range []string{"", "   ", "\t"} {
		got := ix.Query(q)
		if len(got) != 5 {
			t.Fatalf("query %q: got %d cards, want 5", q, len(got))
		}
		for i, c := range got {
			if c.ID != i+1 {
				t.Fatalf("query %q: order not preserved: %v", q, got)
			}
		}
	}
}

func TestQuery_ResultsAreSubsetOfDeck(t *testing.T) {
	cards := deck()
	ix := NewIndex(cards)
	known := map[int]bool{}
	for _, c := range cards {
		known[c.ID] = true
	}
	for _, q := range []string{"her", "tower", "wheel", "zzzz", "t"} {
		for _, c := range ix.Query(q) {
			if !known[c.ID] {
				t.Fatalf("query %q returned unknown card %+v", q, c)
			}
		}
	}
}

func TestQuery_FindsFuzzyTitleMatch(t *testing.T) {
	ix := NewIndex(deck())
	got := ix.Query("hermit")
	if len(got) == 0 || got[0].ID != 1 {
		t.Fatalf("query hermit = %v, want The Hermit first", got)
	}
}

func TestQuery_NoMatchIsEmptyNotNilPanic(t *testing.T) {
	ix := NewIndex(deck())
	if got := ix.Query("qqqqqq"); len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}

func TestQuery_DoesNotMutateDeckOrder(t *testing.T) {
	cards := deck()
	ix := NewIndex(cards)
	_ = ix.Query("the")
	full := ix.Query("")
	for i, c := range full {
		if c.ID != i+1 {
			t.Fatalf("deck order mutated by ranked query: %v", full)
		}
	}
}
