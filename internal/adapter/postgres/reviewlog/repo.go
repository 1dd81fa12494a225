// Package reviewlog implements the append-only review log using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/recall/internal/adapter/postgres"
	"github.com/heartmarshall/recall/internal/domain"
)

const table = "review_logs"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a grading event.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) error {
	query, args, err := psql.Insert(table).
		Columns("id", "card_id", "session_id", "grade", "correct", "elapsed_ms", "reviewed_on").
		Values(rl.ID, rl.CardID, rl.SessionID, string(rl.Grade), rl.Correct, rl.ElapsedMs, rl.ReviewedOn).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert review log: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "review_log", rl.ID.String())
	}

	return nil
}

// CountSince counts gradings of a deck on or after since, and how many of
// them passed (GOOD or EASY).
func (r *Repo) CountSince(ctx context.Context, deck string, since time.Time) (domain.ReviewCounts, error) {
	query, args, err := psql.Select(
		"count(*)",
		"count(*) FILTER (WHERE rl.grade IN ('GOOD', 'EASY'))",
	).
		From(table + " rl").
		Join("cards c ON c.id = rl.card_id").
		Where(sq.Eq{"c.deck": deck}).
		Where(sq.GtOrEq{"rl.reviewed_on": since}).
		ToSql()
	if err != nil {
		return domain.ReviewCounts{}, fmt.Errorf("build count review logs: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var counts domain.ReviewCounts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.Total, &counts.Passed); err != nil {
		return domain.ReviewCounts{}, fmt.Errorf("count review logs of deck %q: %w", deck, err)
	}

	return counts, nil
}

// CountOn counts gradings of a deck logged on day.
func (r *Repo) CountOn(ctx context.Context, deck string, day time.Time) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(table + " rl").
		Join("cards c ON c.id = rl.card_id").
		Where(sq.Eq{"c.deck": deck, "rl.reviewed_on": day}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count review logs: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count review logs of deck %q: %w", deck, err)
	}

	return count, nil
}
