package cli

import (
	"grimoire-cli/internal/store"

	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var history bool
	var limit int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show reveal progress and the featured card of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			seen, total := s.Counter()
			out := map[string]any{
				"seen":           seen,
				"total":          total,
				"featuredCardId": s.FeaturedCardID(),
			}
			if history {
				evs, err := store.ReadReveals(cmd.Context(), limit)
				if err != nil {
					return writeErr(cmd, err)
				}
				out["history"] = evs
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "Include recent reveal events (newest first)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max history events to return (0 = all)")
	return cmd
}
