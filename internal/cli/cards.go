package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type cardSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Seen     bool   `json:"seen"`
	Featured bool   `json:"featured"`
}

func newCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Inspect the card deck",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cards with their reveal state (deck order)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			featured := s.FeaturedCardID()
			out := make([]cardSummary, 0, len(s.Data.Cards))
			for _, c := range s.Data.Cards {
				out = append(out, cardSummary{
					ID:       c.ID,
					Title:    c.Title,
					Seen:     s.Settings.Seen(c.ID),
					Featured: c.ID == featured,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show one card in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid card id %q", args[0]))
			}
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			card, ok := s.Data.FindCard(id)
			if !ok {
				return writeErr(cmd, fmt.Errorf("no card with id %d", id))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":          card.ID,
				"title":       card.Title,
				"description": card.Description,
				"seen":        s.Settings.Seen(card.ID),
				"featured":    card.ID == s.FeaturedCardID(),
			}})
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search card titles (best match first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			featured := s.FeaturedCardID()
			matches := s.Index().Query(args[0])
			out := make([]cardSummary, 0, len(matches))
			for _, c := range matches {
				out = append(out, cardSummary{
					ID:       c.ID,
					Title:    c.Title,
					Seen:     s.Settings.Seen(c.ID),
					Featured: c.ID == featured,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(searchCmd)
	return cmd
}
