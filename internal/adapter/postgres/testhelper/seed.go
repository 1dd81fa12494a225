package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recall/internal/domain"
)

// UniqueDeck returns a deck name that no other test uses, so tests sharing
// the container do not see each other's cards.
func UniqueDeck(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedCard inserts a card whose ID is derived from deck and content so
// parallel tests never collide. Returns the stored card.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deck, front, back string) domain.Card {
	t.Helper()
	ctx := context.Background()

	c := domain.Card{
		ID:    domain.StableCardID(deck+"/"+front, back),
		Deck:  deck,
		Front: front,
		Back:  back,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO cards (id, deck, front, back) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		c.ID, c.Deck, c.Front, c.Back,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("SeedCard: insert card: %v", err)
	}

	return c
}

// SeedCardState stores st for an existing card.
func SeedCardState(t *testing.T, pool *pgxpool.Pool, cardID string, st domain.CardState) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO card_states (card_id, interval_days, ease, due, reps, lapses, last_reviewed, learning_step)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cardID, st.Interval, st.Ease, st.Due, st.Reps, st.Lapses, st.LastReviewed, st.LearningStep,
	)
	if err != nil {
		t.Fatalf("SeedCardState: %v", err)
	}
}

// SeedReviewLog stores a grading of cardID on day.
func SeedReviewLog(t *testing.T, pool *pgxpool.Pool, cardID string, grade domain.ReviewGrade, day time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_logs (id, card_id, session_id, grade, reviewed_on)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), cardID, uuid.New(), string(grade), day,
	)
	if err != nil {
		t.Fatalf("SeedReviewLog: %v", err)
	}
}
