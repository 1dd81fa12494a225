package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "session_id"
	deckKey      ctxKey = "deck"
)

// WithSessionID stores the study session ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the study session ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithDeck stores the deck name in the context.
func WithDeck(ctx context.Context, deck string) context.Context {
	return context.WithValue(ctx, deckKey, deck)
}

// DeckFromCtx extracts the deck name from the context.
// Returns an empty string if absent.
func DeckFromCtx(ctx context.Context) string {
	deck, _ := ctx.Value(deckKey).(string)
	return deck
}
