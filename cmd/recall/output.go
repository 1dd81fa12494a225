package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/heartmarshall/recall/internal/domain"
	"github.com/heartmarshall/recall/internal/service/study"
)

func printSummary(w io.Writer, sum domain.SessionSummary) {
	status := "finished"
	if sum.Aborted {
		status = "aborted"
	}

	fmt.Fprintf(w, "\n%s (%s)\n", styles.Title.Render("session "+status), sum.Mode)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  cards\t%d\n", sum.UniqueCards)
	fmt.Fprintf(tw, "  draws\t%d\n", sum.TotalDraws)
	fmt.Fprintf(tw, "  graduated\t%d\n", sum.Graduated)
	fmt.Fprintf(tw, "  remaining\t%d\n", sum.Remaining)
	fmt.Fprintf(tw, "  grades\tagain %d, hard %d, good %d, easy %d\n",
		sum.Grades.Again, sum.Grades.Hard, sum.Grades.Good, sum.Grades.Easy)
	fmt.Fprintf(tw, "  accuracy\t%s\n", formatPercent(sum.Accuracy()))
	_ = tw.Flush()
}

func printStats(w io.Writer, st domain.DeckStats) {
	fmt.Fprintln(w, styles.Title.Render("deck "+st.Deck))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  total\t%d\n", st.TotalCards)
	fmt.Fprintf(tw, "  new\t%d\n", st.New)
	fmt.Fprintf(tw, "  learning\t%d\n", st.Learning)
	fmt.Fprintf(tw, "  review\t%d\n", st.Review)
	fmt.Fprintf(tw, "  due today\t%d\n", st.DueToday)
	fmt.Fprintf(tw, "  reviewed today\t%d cards, %d gradings\n", st.ReviewsToday, st.GradingsToday)
	fmt.Fprintf(tw, "  accuracy 7d\t%s\n", formatPercent(st.Accuracy7d))
	fmt.Fprintf(tw, "  accuracy 30d\t%s\n", formatPercent(st.Accuracy30d))
	_ = tw.Flush()
}

func printImportResult(w io.Writer, what string, res study.ImportResult) {
	fmt.Fprintf(w, "%s: %d added, %d skipped, %d invalid\n", what, res.Added, res.Skipped, res.Invalid)
}

func formatPercent(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *p)
}
