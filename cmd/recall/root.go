package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
	"github.com/heartmarshall/recall/internal/config"
	"github.com/heartmarshall/recall/pkg/ctxutil"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	deck       string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "recall",
		Short: "Spaced-repetition flashcards in the terminal",
		Long: `recall schedules flashcards with an SM-2 style algorithm.

Cards live in decks. "review" studies the cards due today, "practice"
drills the hardest cards of a deck, "stats" shows deck progress.`,
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVarP(&flags.deck, "deck", "d", "", "deck name (default: study.default_deck)")

	root.AddCommand(
		newMigrateCmd(flags),
		newAddCmd(flags),
		newImportCmd(flags),
		newExportCmd(flags),
		newImportStateCmd(flags),
		newReviewCmd(flags),
		newPracticeCmd(flags),
		newStatsCmd(flags),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the config file named by --config, falling back to
// CONFIG_PATH.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadPath(f.configPath)
	}
	return config.Load()
}

// deckName resolves --deck against the configured default deck.
func (f *globalFlags) deckName(cfg *config.Config) string {
	if f.deck != "" {
		return f.deck
	}
	return cfg.Study.DefaultDeck
}

// withApp loads configuration, wires the application and runs fn with it.
func (f *globalFlags) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx := ctxutil.WithDeck(cmd.Context(), f.deckName(cfg))
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
