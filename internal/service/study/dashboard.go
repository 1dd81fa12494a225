package study

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/recall/internal/domain"
)

// matureInterval is the interval from which a card counts as "review"
// rather than "learning" in deck statistics.
const matureInterval = 21

// DeckStats returns aggregated statistics for a deck.
func (s *Service) DeckStats(ctx context.Context, deck string) (domain.DeckStats, error) {
	if errs := validateDeck(deck, nil); len(errs) > 0 {
		return domain.DeckStats{}, domain.NewValidationErrors(errs)
	}

	cards, states, err := s.loadDeck(ctx, deck)
	if err != nil {
		return domain.DeckStats{}, err
	}

	today := s.today()
	stats := domain.DeckStats{Deck: deck, TotalCards: len(cards)}

	for _, c := range cards {
		st, ok := states[c.ID]
		if !ok {
			stats.New++
			stats.DueToday++
			continue
		}

		switch {
		case st.Reps == 0:
			stats.New++
		case st.Interval < matureInterval:
			stats.Learning++
		default:
			stats.Review++
		}

		if st.IsDue(today) {
			stats.DueToday++
		}
		if st.LastReviewed != nil && st.LastReviewed.Equal(today) {
			stats.ReviewsToday++
		}
	}

	stats.GradingsToday, err = s.reviews.CountOn(ctx, deck, today)
	if err != nil {
		return domain.DeckStats{}, fmt.Errorf("count gradings today: %w", err)
	}

	if stats.Accuracy7d, err = s.accuracySince(ctx, deck, domain.AddDays(today, -7)); err != nil {
		return domain.DeckStats{}, err
	}
	if stats.Accuracy30d, err = s.accuracySince(ctx, deck, domain.AddDays(today, -30)); err != nil {
		return domain.DeckStats{}, err
	}

	return stats, nil
}

// accuracySince returns the percentage of Good/Easy gradings on or after
// since, or nil when nothing was graded.
func (s *Service) accuracySince(ctx context.Context, deck string, since time.Time) (*float64, error) {
	counts, err := s.reviews.CountSince(ctx, deck, since)
	if err != nil {
		return nil, fmt.Errorf("count reviews since %s: %w", since.Format(domain.DateLayout), err)
	}
	if counts.Total == 0 {
		return nil, nil
	}
	acc := float64(counts.Passed) / float64(counts.Total) * 100
	return &acc, nil
}
