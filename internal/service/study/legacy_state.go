package study

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/recall/internal/domain"
)

// legacyStateDoc is the JSON state document of the file-based deck format:
// {"cards": {"<card id>": {"interval": 0, "ease": 2.5, "due": "2024-01-15", ...}}}.
type legacyStateDoc struct {
	Cards map[string]domain.CardState `json:"cards"`
}

// ImportLegacyState replaces the scheduling state of the deck's cards with the
// states found in a legacy JSON document. IDs that do not belong to the deck
// are skipped. All states are written in one transaction.
func (s *Service) ImportLegacyState(ctx context.Context, deck string, r io.Reader) (ImportResult, error) {
	if errs := validateDeck(deck, nil); len(errs) > 0 {
		return ImportResult{}, domain.NewValidationErrors(errs)
	}

	var doc legacyStateDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ImportResult{}, fmt.Errorf("decode state document: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, deck)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list cards: %w", err)
	}

	known := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		known[c.ID] = struct{}{}
	}

	var res ImportResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for id, st := range doc.Cards {
			if _, ok := known[id]; !ok {
				res.Skipped++
				continue
			}
			if err := s.states.Upsert(txCtx, id, st); err != nil {
				return fmt.Errorf("upsert state %s: %w", id, err)
			}
			res.Added++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.log.InfoContext(ctx, "legacy state imported",
		slog.String("deck", deck),
		slog.Int("imported", res.Added),
		slog.Int("skipped", res.Skipped),
	)

	return res, nil
}
