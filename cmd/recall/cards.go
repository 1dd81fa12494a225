package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
	"github.com/heartmarshall/recall/internal/service/study"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <front> <back>",
		Short: "Add a single card to a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				deck := flags.deckName(a.Config)
				card, added, err := a.Study.AddCard(ctx, study.AddCardInput{
					Deck:  deck,
					Front: args[0],
					Back:  args[1],
				})
				if err != nil {
					return err
				}
				if !added {
					cmd.Printf("card already exists, skipped\n")
					return nil
				}
				cmd.Printf("added %s to %s\n", card.ID, deck)
				return nil
			})
		},
	}
}

func newImportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import tab-separated front<TAB>back lines (stdin when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				r, closeFn, err := openInput(cmd, args)
				if err != nil {
					return err
				}
				defer closeFn()

				res, err := a.Study.ImportCards(ctx, flags.deckName(a.Config), r)
				if err != nil {
					return err
				}
				printImportResult(cmd.OutOrStdout(), "cards", res)
				return nil
			})
		},
	}
}

func newExportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export a deck as tab-separated lines (stdout when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				w := cmd.OutOrStdout()
				if len(args) == 1 && args[0] != "-" {
					f, err := os.Create(args[0])
					if err != nil {
						return fmt.Errorf("create %s: %w", args[0], err)
					}
					defer f.Close()
					w = f
				}

				n, err := a.Study.ExportCards(ctx, flags.deckName(a.Config), w)
				if err != nil {
					return err
				}
				if w != cmd.OutOrStdout() {
					cmd.Printf("exported %d cards\n", n)
				}
				return nil
			})
		},
	}
}

func newImportStateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import-state <file>",
		Short: `Import scheduling state from a {"cards": {...}} JSON document`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				r, closeFn, err := openInput(cmd, args)
				if err != nil {
					return err
				}
				defer closeFn()

				res, err := a.Study.ImportLegacyState(ctx, flags.deckName(a.Config), r)
				if err != nil {
					return err
				}
				printImportResult(cmd.OutOrStdout(), "states", res)
				return nil
			})
		},
	}
}

// openInput opens the file named by args[0], or stdin for "-" or no argument.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, func() { _ = f.Close() }, nil
}
