package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/recall/internal/config"
	"github.com/heartmarshall/recall/internal/domain"
	"github.com/heartmarshall/recall/internal/service/answer"
	"github.com/heartmarshall/recall/internal/service/study"
)

// quitCommand ends a session when typed at the answer or grade prompt.
const quitCommand = ":q"

// promptGrader asks the learner for an answer on the terminal, checks it
// against the back of the card and proposes a grade from correctness and
// response time.
type promptGrader struct {
	lines      *bufio.Scanner
	out        io.Writer
	clock      clockwork.Clock
	threshold  int
	easyBefore time.Duration
	hardAfter  time.Duration
}

func newPromptGrader(in io.Reader, out io.Writer, clock clockwork.Clock, cfg config.StudyConfig) *promptGrader {
	return &promptGrader{
		lines:      bufio.NewScanner(in),
		out:        out,
		clock:      clock,
		threshold:  cfg.LenientThreshold,
		easyBefore: cfg.EasyBefore,
		hardAfter:  cfg.HardAfter,
	}
}

func (g *promptGrader) Grade(ctx context.Context, d study.Draw) (study.AnswerInput, error) {
	fmt.Fprintf(g.out, "\n%s %s\n> ", styles.Label.Render("["+d.Label+"]"), styles.Front.Render(d.Entry.Front))

	start := g.clock.Now()
	given, err := g.readLine(ctx)
	if err != nil {
		return study.AnswerInput{}, err
	}
	elapsed := g.clock.Since(start)

	if given == "" {
		fmt.Fprintf(g.out, "  %s answer: %s\n", styles.Muted.Render("?"), d.Entry.Back)
		return study.AnswerInput{Grade: domain.ReviewGradeAgain, Elapsed: elapsed}, nil
	}

	match := answer.Check(given, d.Entry.Back, g.threshold)
	correct := match.Correct()
	switch match {
	case answer.MatchExact:
		fmt.Fprintf(g.out, "  %s\n", styles.Success.Render("correct"))
	case answer.MatchLenient:
		fmt.Fprintf(g.out, "  %s expected: %s\n", styles.Warning.Render("almost,"), d.Entry.Back)
	default:
		fmt.Fprintf(g.out, "  %s expected: %s\n", styles.Error.Render("wrong,"), d.Entry.Back)
	}

	suggested := study.SuggestGrade(correct, elapsed, g.easyBefore, g.hardAfter)
	fmt.Fprintf(g.out, "  grade 1 again, 2 hard, 3 good, 4 easy [%s]: ", strings.ToLower(suggested.String()))

	raw, err := g.readLine(ctx)
	if err != nil {
		return study.AnswerInput{}, err
	}

	grade := suggested
	if raw != "" {
		if parsed, err := domain.ParseReviewGrade(raw); err == nil {
			grade = parsed
		}
	}

	return study.AnswerInput{Grade: grade, Correct: &correct, Elapsed: elapsed}, nil
}

// readLine returns the next trimmed input line. End of input and the quit
// command end the session; cancelling ctx unblocks a pending read.
func (g *promptGrader) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		ok   bool
	}

	ch := make(chan result, 1)
	go func() {
		ok := g.lines.Scan()
		ch <- result{line: g.lines.Text(), ok: ok}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if !r.ok {
			if err := g.lines.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", domain.ErrSessionAborted
		}
		line := strings.TrimSpace(r.line)
		if line == quitCommand {
			return "", domain.ErrSessionAborted
		}
		return line, nil
	}
}
