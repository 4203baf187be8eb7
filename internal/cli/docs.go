package cli

import (
	"fmt"
	"strings"

	"grimoire-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in user guide",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": docs.Topics()})
			}
			md, ok := docs.Get(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown topic %q (try: %s)", args[0], strings.Join(docs.Topics(), ", ")))
			}
			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err == nil {
				if out, rerr := r.Render(md); rerr == nil {
					_, werr := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
					return werr
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), md)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw markdown without rendering")
	return cmd
}
