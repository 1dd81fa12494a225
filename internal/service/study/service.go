package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/recall/internal/domain"
	"github.com/jonboulle/clockwork"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByID(ctx context.Context, cardID string) (*domain.Card, error)
	ListByDeck(ctx context.Context, deck string) ([]domain.Card, error)
}

type cardStateRepo interface {
	GetByCardID(ctx context.Context, cardID string) (*domain.CardState, error)
	Upsert(ctx context.Context, cardID string, state domain.CardState) error
	ListByDeck(ctx context.Context, deck string) (map[string]domain.CardState, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
	CountSince(ctx context.Context, deck string, since time.Time) (domain.ReviewCounts, error)
	CountOn(ctx context.Context, deck string, day time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements deck management and study sessions.
type Service struct {
	cards     cardRepo
	states    cardStateRepo
	reviews   reviewLogRepo
	tx        txManager
	log       *slog.Logger
	clock     clockwork.Clock
	tz        *time.Location
	srsConfig domain.SRSConfig
}

// NewService creates a new Study service. The learning-step configuration is
// validated here so that scheduling itself can never fail on it.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	states cardStateRepo,
	reviews reviewLogRepo,
	tx txManager,
	clock clockwork.Clock,
	tz *time.Location,
	srsConfig domain.SRSConfig,
) (*Service, error) {
	if err := srsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SRS config: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if tz == nil {
		tz = time.Local
	}

	return &Service{
		cards:     cards,
		states:    states,
		reviews:   reviews,
		tx:        tx,
		log:       log.With("service", "study"),
		clock:     clock,
		tz:        tz,
		srsConfig: srsConfig,
	}, nil
}

// SRSConfig returns the scheduling parameters in use.
func (s *Service) SRSConfig() domain.SRSConfig {
	return s.srsConfig
}

// today is the current calendar date in the configured timezone.
func (s *Service) today() time.Time {
	return Today(s.clock.Now(), s.tz)
}
