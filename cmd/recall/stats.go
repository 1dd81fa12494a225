package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress statistics of a deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				st, err := a.Study.DeckStats(ctx, flags.deckName(a.Config))
				if err != nil {
					return err
				}
				printStats(cmd.OutOrStdout(), st)
				return nil
			})
		},
	}
}
