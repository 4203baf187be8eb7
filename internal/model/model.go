package model

import "time"

// Card is one collectible card in the album. Cards are loaded once at startup
// and never mutated for the lifetime of the session.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CommentCategory describes one selectable comment thread in the comments view.
type CommentCategory struct {
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type UIText struct {
	IdentifyPrompt    string            `json:"identify_prompt"`
	DynamicSubtitles  []string          `json:"dynamic_subtitles"`
	CommentCategories []CommentCategory `json:"comment_categories"`
}

type Changelog struct {
	Version string   `json:"version"`
	Changes []string `json:"changes"`
	AINote  string   `json:"ai_note"`
}

type LegalText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AppData is the root startup document. It is read-only after load; the
// pointer fields are nil when the source document omits them, and the views
// backed by them degrade to silent no-ops.
type AppData struct {
	Cards     []Card     `json:"cards"`
	UIText    UIText     `json:"ui_text"`
	Changelog *Changelog `json:"changelog"`
	LegalText *LegalText `json:"legal_text"`
}

// FindCard returns the card with the given id, if present.
func (d *AppData) FindCard(id int) (*Card, bool) {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			return &d.Cards[i], true
		}
	}
	return nil, false
}

// RevealEvent is one row of the local reveal history log.
type RevealEvent struct {
	CardID int       `json:"cardId"`
	At     time.Time `json:"at"`
}
