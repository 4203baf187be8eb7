// Package cli wires the scriptable grimoire commands and the interactive TUI
// behind one cobra root. No subcommand means the TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"grimoire-cli/internal/album"
	"grimoire-cli/internal/audio"
	"grimoire-cli/internal/comments"
	"grimoire-cli/internal/counter"
	"grimoire-cli/internal/data"
	"grimoire-cli/internal/errlog"
	"grimoire-cli/internal/format"
	"grimoire-cli/internal/store"
	"grimoire-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	DataSource string
	ConfigDir  string
	SoundsDir  string
	CounterURL string
	Provider   string
	Repo       string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "grimoire",
		Short:        "Grimório: an interactive card album, in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive album
  grimoire

  # Scriptable commands
  grimoire cards list
  grimoire reveal 7
  grimoire progress --history
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// store resolves its directory from the environment, so a flag
		// override is applied by exporting it before any store call.
		if app.ConfigDir != "" {
			return os.Setenv("GRIMOIRE_CONFIG_DIR", app.ConfigDir)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.DataSource, "data", envOr("GRIMOIRE_DATA", "data.json"), "App data document (http(s) URL or file path)")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", "", "Settings directory (default: $GRIMOIRE_CONFIG_DIR or ~/.grimoire)")
	cmd.PersistentFlags().StringVar(&app.SoundsDir, "sounds", envOr("GRIMOIRE_SOUNDS", ""), "Directory with <cue>.mp3 files (empty: no sound assets)")
	cmd.PersistentFlags().StringVar(&app.CounterURL, "counter", envOr("GRIMOIRE_COUNTER", counter.DefaultBaseURL), "Visit counter base URL (empty: disabled)")
	cmd.PersistentFlags().StringVar(&app.Provider, "comments-provider", string(comments.DefaultProvider), "Comments provider (giscus|utterances)")
	cmd.PersistentFlags().StringVar(&app.Repo, "comments-repo", comments.DefaultRepo, "GitHub repository backing the comment threads")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("GRIMOIRE_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newCardsCmd(app))
	cmd.AddCommand(newRevealCmd(app))
	cmd.AddCommand(newSealCmd(app))
	cmd.AddCommand(newProgressCmd(app))
	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newDebugCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(tui.Config{
		DataSource:     app.DataSource,
		AudioSources:   audioSources(app.SoundsDir),
		CounterBaseURL: app.CounterURL,
		Comments:       commentsConfig(app),
		RevealDelay:    revealDelayFromEnv(),
	})
}

func commentsConfig(app *App) comments.Config {
	return comments.Config{
		Provider: comments.Provider(app.Provider),
		Repo:     app.Repo,
	}
}

func audioSources(dir string) map[string]string {
	if dir == "" {
		return nil
	}
	sources := map[string]string{}
	for _, cue := range audio.CueNames() {
		sources[cue] = filepath.Join(dir, cue+".mp3")
	}
	return sources
}

func revealDelayFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("GRIMOIRE_REVEAL_DELAY_MS"))
	if v == "" {
		return 0
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// loadSession fetches the data document and joins it with stored settings.
func loadSession(cmd *cobra.Command, app *App) (*album.Session, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	d, err := data.Fetch(ctx, app.DataSource)
	if err != nil {
		return nil, err
	}
	return album.NewSession(d, store.LoadSettings(), time.Now(), errlog.New()), nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
