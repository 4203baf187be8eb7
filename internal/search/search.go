// Package search wraps fuzzy title matching over the card deck.
package search

import (
	"strings"

	"grimoire-cli/internal/model"

	"github.com/sahilm/fuzzy"
)

// scoreFloor excludes loose matches: fuzzy.Find ranks by score, and sparse
// hits (scattered characters, long unmatched prefixes) score below zero.
const scoreFloor = 0

// Index is a fuzzy text index over card titles. Built once after data load.
type Index struct {
	cards  []model.Card
	titles []string
}

func NewIndex(cards []model.Card) *Index {
	titles := make([]string, len(cards))
	for i, c := range cards {
		titles[i] = c.Title
	}
	return &Index{cards: cards, titles: titles}
}

// Query returns cards matching text, best match first. An empty or
// whitespace-only query returns the full deck in original order.
func (ix *Index) Query(text string) []model.Card {
	text = strings.TrimSpace(text)
	if text == "" {
		out := make([]model.Card, len(ix.cards))
		copy(out, ix.cards)
		return out
	}
	matches := fuzzy.Find(text, ix.titles)
	out := make([]model.Card, 0, len(matches))
	for _, m := range matches {
		if m.Score < scoreFloor {
			continue
		}
		out = append(out, ix.cards[m.Index])
	}
	return out
}
