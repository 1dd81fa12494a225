package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
	"github.com/heartmarshall/recall/internal/domain"
	"github.com/heartmarshall/recall/internal/service/study"
)

func newReviewCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review the cards of a deck that are due today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				sess, err := a.Study.StartReview(ctx, study.StartReviewInput{Deck: flags.deckName(a.Config)})
				if err != nil {
					return err
				}
				return runSession(ctx, cmd, a, sess)
			})
		},
	}
}

func newPracticeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "practice [limit]",
		Short: "Drill the hardest cards of a deck regardless of due date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("limit %q: must be a number", args[0])
				}
				limit = n
			}

			return flags.withApp(cmd, func(ctx context.Context, a *app.App) error {
				sess, err := a.Study.StartPractice(ctx, study.StartPracticeInput{
					Deck:  flags.deckName(a.Config),
					Limit: limit,
				})
				if err != nil {
					return err
				}
				return runSession(ctx, cmd, a, sess)
			})
		},
	}
}

func runSession(ctx context.Context, cmd *cobra.Command, a *app.App, sess *study.Session) error {
	if sess.Remaining() == 0 {
		if sess.Mode() == domain.SessionModePractice {
			cmd.Printf("deck %s has no cards\n", sess.Deck())
		} else {
			cmd.Printf("nothing due in %s today\n", sess.Deck())
		}
		return nil
	}

	grader := newPromptGrader(cmd.InOrStdin(), cmd.OutOrStdout(), clockwork.NewRealClock(), a.Config.Study)
	sum, err := sess.Run(ctx, grader)
	printSummary(cmd.OutOrStdout(), sum)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
