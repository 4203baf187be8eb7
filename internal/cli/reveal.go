package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRevealCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reveal [card-id]",
		Short: "Flip a card face up (or --all for the whole deck)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if all {
				n := s.RevealAll()
				seen, total := s.Counter()
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"revealed": n,
					"seen":     seen,
					"total":    total,
				}})
			}

			if len(args) != 1 {
				return writeErr(cmd, errors.New("pass a card id or --all"))
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid card id %q", args[0]))
			}
			card, ok := s.Data.FindCard(id)
			if !ok {
				return writeErr(cmd, fmt.Errorf("no card with id %d", id))
			}
			outcome := s.Reveal(id)
			seen, total := s.Counter()
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":          card.ID,
				"title":       card.Title,
				"alreadySeen": outcome.AlreadySeen,
				"seen":        seen,
				"total":       total,
			}})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Reveal every card")
	return cmd
}

func newSealCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Turn every card face down again and clear the reveal history",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Sealing erases progress; an explicit --all stands in for the
			// confirmation dialog the TUI shows.
			if !all {
				return writeErr(cmd, errors.New("sealing erases all progress; pass --all to confirm"))
			}
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s.ClearAllSeen()
			_, total := s.Counter()
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"seen":  0,
				"total": total,
			}})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Confirm sealing the whole deck")
	return cmd
}
