// Package cardstate implements persistence of per-card scheduling state.
package cardstate

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/recall/internal/adapter/postgres"
	"github.com/heartmarshall/recall/internal/domain"
)

const table = "card_states"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{
		"cs.card_id", "cs.interval_days", "cs.ease", "cs.due",
		"cs.reps", "cs.lapses", "cs.last_reviewed", "cs.learning_step",
	}
)

// Repo provides card state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card state repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByCardID returns the stored state of a card, or domain.ErrNotFound when
// the card was never scheduled.
func (r *Repo) GetByCardID(ctx context.Context, cardID string) (*domain.CardState, error) {
	query, args, err := psql.Select(columns...).
		From(table + " cs").
		Where(sq.Eq{"cs.card_id": cardID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select card state: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	_, st, err := scanState(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card_state", cardID)
	}

	return &st, nil
}

// Upsert stores the state of a card, replacing any previous one.
// An unknown card yields domain.ErrNotFound.
func (r *Repo) Upsert(ctx context.Context, cardID string, st domain.CardState) error {
	query, args, err := psql.Insert(table).
		Columns("card_id", "interval_days", "ease", "due", "reps", "lapses", "last_reviewed", "learning_step").
		Values(cardID, st.Interval, st.Ease, st.Due, st.Reps, st.Lapses, st.LastReviewed, st.LearningStep).
		Suffix(`ON CONFLICT (card_id) DO UPDATE SET
			interval_days = EXCLUDED.interval_days,
			ease = EXCLUDED.ease,
			due = EXCLUDED.due,
			reps = EXCLUDED.reps,
			lapses = EXCLUDED.lapses,
			last_reviewed = EXCLUDED.last_reviewed,
			learning_step = EXCLUDED.learning_step,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert card state: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "card_state", cardID)
	}

	return nil
}

// ListByDeck returns the states of all scheduled cards of a deck keyed by card ID.
func (r *Repo) ListByDeck(ctx context.Context, deck string) (map[string]domain.CardState, error) {
	query, args, err := psql.Select(columns...).
		From(table + " cs").
		Join("cards c ON c.id = cs.card_id").
		Where(sq.Eq{"c.deck": deck}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list card states: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list card states of deck %q: %w", deck, err)
	}
	defer rows.Close()

	states := make(map[string]domain.CardState)
	for rows.Next() {
		id, st, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card state: %w", err)
		}
		states[id] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list card states of deck %q: %w", deck, err)
	}

	return states, nil
}

func scanState(row pgx.Row) (string, domain.CardState, error) {
	var (
		id string
		st domain.CardState
	)
	err := row.Scan(&id, &st.Interval, &st.Ease, &st.Due, &st.Reps, &st.Lapses, &st.LastReviewed, &st.LearningStep)
	if err != nil {
		return "", domain.CardState{}, err
	}
	st.Due = domain.DateOf(st.Due)
	if st.LastReviewed != nil {
		lr := domain.DateOf(*st.LastReviewed)
		st.LastReviewed = &lr
	}
	return id, st, nil
}
