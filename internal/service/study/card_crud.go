package study

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/recall/internal/domain"
)

// AddCard adds a card to a deck together with its new-card state. It reports
// false without error when an identical card already exists.
func (s *Service) AddCard(ctx context.Context, input AddCardInput) (*domain.Card, bool, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	card := &domain.Card{
		ID:    domain.StableCardID(input.Front, input.Back),
		Deck:  input.Deck,
		Front: input.Front,
		Back:  input.Back,
	}
	today := s.today()

	var created *domain.Card

	// Transaction: create card + initial state
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.cards.Create(txCtx, card)
		if createErr != nil {
			return fmt.Errorf("create card: %w", createErr)
		}

		if err := s.states.Upsert(txCtx, created.ID, domain.NewCardState(today)); err != nil {
			return fmt.Errorf("init card state: %w", err)
		}
		return nil
	})

	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.DebugContext(ctx, "duplicate card skipped",
			slog.String("deck", input.Deck),
			slog.String("card_id", card.ID),
		)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("deck", created.Deck),
		slog.String("card_id", created.ID),
	)

	return created, true, nil
}

// ImportCards adds cards from tab-separated "front<TAB>back" lines. Blank lines
// are ignored; lines without a tab or with an empty side count as invalid.
func (s *Service) ImportCards(ctx context.Context, deck string, r io.Reader) (ImportResult, error) {
	var res ImportResult

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		front, back, ok := strings.Cut(line, "\t")
		if !ok || strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
			res.Invalid++
			continue
		}

		_, added, err := s.AddCard(ctx, AddCardInput{Deck: deck, Front: front, Back: back})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				res.Invalid++
				continue
			}
			return res, fmt.Errorf("import line %d: %w", lineNo, err)
		}
		if added {
			res.Added++
		} else {
			res.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read import: %w", err)
	}

	s.log.InfoContext(ctx, "cards imported",
		slog.String("deck", deck),
		slog.Int("added", res.Added),
		slog.Int("skipped", res.Skipped),
		slog.Int("invalid", res.Invalid),
	)

	return res, nil
}

// ExportCards writes every card of the deck as "front<TAB>back" lines in
// insertion order and returns the number written.
func (s *Service) ExportCards(ctx context.Context, deck string, w io.Writer) (int, error) {
	cards, err := s.cards.ListByDeck(ctx, deck)
	if err != nil {
		return 0, fmt.Errorf("list cards: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", c.Front, c.Back); err != nil {
			return 0, fmt.Errorf("write export: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}

	return len(cards), nil
}
