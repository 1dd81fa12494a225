package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recall/internal/domain"
)

// StartReview creates a session over the deck's due cards in insertion order.
// Cards without a persisted state are new and therefore due.
func (s *Service) StartReview(ctx context.Context, input StartReviewInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, states, err := s.loadDeck(ctx, input.Deck)
	if err != nil {
		return nil, err
	}

	today := s.today()

	due := make([]domain.QueueEntry, 0, len(cards))
	for _, c := range cards {
		if st, ok := states[c.ID]; ok && !st.IsDue(today) {
			continue
		}
		due = append(due, toEntry(c))
	}

	session := s.newSession(domain.SessionModeReview, input.Deck, today, due)

	s.log.InfoContext(ctx, "review session created",
		slog.String("deck", input.Deck),
		slog.String("session_id", session.ID().String()),
		slog.Int("due_count", len(due)),
		slog.Int("total", len(cards)),
	)

	return session, nil
}

// StartPractice creates a session over the whole deck, hardest cards first,
// truncated to Limit when it is positive. Due dates are ignored.
func (s *Service) StartPractice(ctx context.Context, input StartPracticeInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, states, err := s.loadDeck(ctx, input.Deck)
	if err != nil {
		return nil, err
	}

	all := make([]domain.QueueEntry, len(cards))
	for i, c := range cards {
		all[i] = toEntry(c)
	}

	ranked := RankByDifficulty(all, states)
	if input.Limit > 0 && len(ranked) > input.Limit {
		ranked = ranked[:input.Limit]
	}

	session := s.newSession(domain.SessionModePractice, input.Deck, s.today(), ranked)

	s.log.InfoContext(ctx, "practice session created",
		slog.String("deck", input.Deck),
		slog.String("session_id", session.ID().String()),
		slog.Int("count", len(ranked)),
		slog.Int("total", len(cards)),
	)

	return session, nil
}

func (s *Service) loadDeck(ctx context.Context, deck string) ([]domain.Card, map[string]domain.CardState, error) {
	cards, err := s.cards.ListByDeck(ctx, deck)
	if err != nil {
		return nil, nil, fmt.Errorf("list cards: %w", err)
	}

	states, err := s.states.ListByDeck(ctx, deck)
	if err != nil {
		return nil, nil, fmt.Errorf("list card states: %w", err)
	}

	return cards, states, nil
}

func toEntry(c domain.Card) domain.QueueEntry {
	return domain.QueueEntry{CardID: c.ID, Front: c.Front, Back: c.Back}
}
