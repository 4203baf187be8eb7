package cli

import (
	"fmt"

	"grimoire-cli/internal/errlog"
	"grimoire-cli/internal/store"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or reset the stored settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": store.LoadSettings()})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore every setting (including reveal progress) to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.ResetSettings(); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.ClearReveals(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": store.DefaultSettings()})
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(resetCmd)
	return cmd
}

func newDebugCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Print the debug report (settings plus captured errors)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The report is already rendered JSON; print it verbatim.
			_, err := fmt.Fprintln(cmd.OutOrStdout(), errlog.New().DebugInfo(store.LoadSettings()))
			return err
		},
	}
}
