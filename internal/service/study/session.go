package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/recall/internal/domain"
	"github.com/heartmarshall/recall/pkg/ctxutil"
)

// Draw is the card currently presented to the learner.
type Draw struct {
	Entry domain.QueueEntry
	State domain.CardState
	Tier  Tier
	Label string
}

// AnswerResult is the outcome of grading the card in flight.
type AnswerResult struct {
	CardID    string
	Previous  domain.CardState
	State     domain.CardState
	Requeue   domain.Requeue
	Graduated bool
}

// Grader supplies the grade for a drawn card. Returning an error wrapping
// domain.ErrSessionAborted ends the session without failing it.
type Grader interface {
	Grade(ctx context.Context, d Draw) (AnswerInput, error)
}

// GraderFunc adapts a function to the Grader interface.
type GraderFunc func(ctx context.Context, d Draw) (AnswerInput, error)

func (f GraderFunc) Grade(ctx context.Context, d Draw) (AnswerInput, error) {
	return f(ctx, d)
}

// Session drives one sitting over a deck. It is not safe for concurrent use:
// exactly one card is in flight between Next and Answer.
type Session struct {
	id    uuid.UUID
	mode  domain.SessionMode
	deck  string
	today time.Time

	states  cardStateRepo
	reviews reviewLogRepo
	tx      txManager
	log     *slog.Logger
	cfg     domain.SRSConfig

	queue   *ReviewQueue
	current *Draw
	seen    map[string]struct{}
	summary domain.SessionSummary
}

func (s *Service) newSession(mode domain.SessionMode, deck string, today time.Time, entries []domain.QueueEntry) *Session {
	id := uuid.New()
	queue := NewReviewQueue(entries)

	return &Session{
		id:      id,
		mode:    mode,
		deck:    deck,
		today:   today,
		states:  s.states,
		reviews: s.reviews,
		tx:      s.tx,
		log:     s.log,
		cfg:     s.srsConfig,
		queue:   queue,
		seen:    make(map[string]struct{}, queue.Len()),
		summary: domain.SessionSummary{SessionID: id, Mode: mode},
	}
}

// ID returns the session identifier recorded with every review log.
func (s *Session) ID() uuid.UUID { return s.id }

// Mode returns whether this is a review or practice session.
func (s *Session) Mode() domain.SessionMode { return s.mode }

// Today returns the calendar date the session schedules against.
func (s *Session) Today() time.Time { return s.today }

// Deck returns the deck the session studies.
func (s *Session) Deck() string { return s.deck }

// Context returns ctx carrying the session ID and deck for logging.
func (s *Session) Context(ctx context.Context) context.Context {
	return ctxutil.WithDeck(ctxutil.WithSessionID(ctx, s.id), s.deck)
}

// Next draws the next card by tier priority and loads its persisted state.
// It returns false once every tier is empty.
func (s *Session) Next(ctx context.Context) (Draw, bool, error) {
	if s.current != nil {
		return Draw{}, false, domain.ErrCardInFlight
	}

	entry, tier, ok := s.queue.Pop()
	if !ok {
		return Draw{}, false, nil
	}

	state, err := s.loadState(ctx, entry.CardID)
	if err != nil {
		s.queue.unpop(tier, entry)
		return Draw{}, false, err
	}

	d := Draw{
		Entry: entry,
		State: state,
		Tier:  tier,
		Label: StepLabel(state, s.cfg),
	}
	s.current = &d
	return d, true, nil
}

// Current returns the card in flight, if any.
func (s *Session) Current() (Draw, bool) {
	if s.current == nil {
		return Draw{}, false
	}
	return *s.current, true
}

func (s *Session) loadState(ctx context.Context, cardID string) (domain.CardState, error) {
	st, err := s.states.GetByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewCardState(s.today), nil
		}
		return domain.CardState{}, fmt.Errorf("load state %s: %w", cardID, err)
	}
	return *st, nil
}

// Answer grades the card in flight, persists the new state together with its
// review log, then requeues the card. If persisting fails the card stays in
// flight and Answer may be retried.
func (s *Session) Answer(ctx context.Context, input AnswerInput) (AnswerResult, error) {
	if s.current == nil {
		return AnswerResult{}, domain.ErrNoCardInFlight
	}
	if err := input.Validate(); err != nil {
		return AnswerResult{}, err
	}

	ctx = s.Context(ctx)
	d := *s.current
	cardID := d.Entry.CardID

	out := CalculateSRS(SRSInput{
		State:  d.State,
		Grade:  input.Grade,
		Today:  s.today,
		Config: s.cfg,
	})

	entry := &domain.ReviewLog{
		ID:         uuid.New(),
		CardID:     cardID,
		SessionID:  s.id,
		Grade:      input.Grade,
		Correct:    input.Correct,
		ElapsedMs:  input.elapsedMs(),
		ReviewedOn: s.today,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.states.Upsert(ctx, cardID, out.State); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		if err := s.reviews.Create(ctx, entry); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}
		return nil
	})
	if err != nil {
		return AnswerResult{}, fmt.Errorf("answer %s: %w", cardID, err)
	}

	graduated := out.Graduated(d.State)
	s.record(cardID, input, graduated)
	s.queue.Requeue(d.Entry, out.Requeue)
	s.current = nil

	s.log.InfoContext(ctx, "card graded",
		slog.String("card_id", cardID),
		slog.String("grade", string(input.Grade)),
		slog.String("requeue", out.Requeue.String()),
		slog.Int("interval", out.State.Interval),
		slog.String("due", out.State.Due.Format(domain.DateLayout)),
	)

	return AnswerResult{
		CardID:    cardID,
		Previous:  d.State,
		State:     out.State,
		Requeue:   out.Requeue,
		Graduated: graduated,
	}, nil
}

func (s *Session) record(cardID string, input AnswerInput, graduated bool) {
	s.summary.TotalDraws++
	if _, ok := s.seen[cardID]; !ok {
		s.seen[cardID] = struct{}{}
		s.summary.UniqueCards++
	}
	if input.Correct != nil {
		if *input.Correct {
			s.summary.Correct++
		} else {
			s.summary.Incorrect++
		}
	}
	if graduated {
		s.summary.Graduated++
	}
	s.summary.Grades.Add(input.Grade)
}

// Abort stops the session. Queued cards are discarded; they stay due
// according to their last persisted state.
func (s *Session) Abort() {
	s.summary.Aborted = true
}

// Remaining counts queued cards plus the card in flight.
func (s *Session) Remaining() int {
	n := s.queue.Len()
	if s.current != nil {
		n++
	}
	return n
}

// Summary reports the session counters.
func (s *Session) Summary() domain.SessionSummary {
	sum := s.summary
	sum.Remaining = s.Remaining()
	return sum
}

// Run drives the draw loop to completion, asking g for every grade.
// Cancelling ctx stops the loop between draws and returns ctx.Err().
func (s *Session) Run(ctx context.Context, g Grader) (domain.SessionSummary, error) {
	ctx = s.Context(ctx)

	s.log.InfoContext(ctx, "session started",
		slog.String("mode", string(s.mode)),
		slog.Int("cards", s.queue.Len()),
		slog.String("today", s.today.Format(domain.DateLayout)),
	)

	err := s.loop(ctx, g)
	if errors.Is(err, domain.ErrSessionAborted) {
		err = nil
	}

	sum := s.Summary()
	s.log.InfoContext(ctx, "session finished",
		slog.Int("unique_cards", sum.UniqueCards),
		slog.Int("total_draws", sum.TotalDraws),
		slog.Int("graduated", sum.Graduated),
		slog.Int("remaining", sum.Remaining),
		slog.Bool("aborted", sum.Aborted),
	)

	return sum, err
}

func (s *Session) loop(ctx context.Context, g Grader) error {
	for {
		if err := ctx.Err(); err != nil {
			s.Abort()
			return err
		}

		d, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		input, err := g.Grade(ctx, d)
		if err != nil {
			if errors.Is(err, domain.ErrSessionAborted) || ctx.Err() != nil {
				s.Abort()
			}
			return err
		}

		if _, err := s.Answer(ctx, input); err != nil {
			return err
		}
	}
}
