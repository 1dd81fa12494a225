// Package card implements the Card repository using PostgreSQL.
package card

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/recall/internal/adapter/postgres"
	"github.com/heartmarshall/recall/internal/domain"
)

const table = "cards"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "deck", "front", "back", "created_at"}
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a card. A card with the same ID already present in any deck
// yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query, args, err := psql.Insert(table).
		Columns("id", "deck", "front", "back").
		Values(card.ID, card.Deck, card.Front, card.Back).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert card: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanCard(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("card %s: %w", card.ID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}

	return &created, nil
}

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, cardID string) (*domain.Card, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": cardID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select card: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCard(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &c, nil
}

// ListByDeck returns the cards of a deck in insertion order.
func (r *Repo) ListByDeck(ctx context.Context, deck string) ([]domain.Card, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"deck": deck}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards of deck %q: %w", deck, err)
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards of deck %q: %w", deck, err)
	}

	return cards, nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var c domain.Card
	if err := row.Scan(&c.ID, &c.Deck, &c.Front, &c.Back, &c.CreatedAt); err != nil {
		return domain.Card{}, err
	}
	return c, nil
}
