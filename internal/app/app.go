package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/recall/internal/adapter/postgres"
	"github.com/heartmarshall/recall/internal/adapter/postgres/card"
	"github.com/heartmarshall/recall/internal/adapter/postgres/cardstate"
	"github.com/heartmarshall/recall/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/recall/internal/config"
	"github.com/heartmarshall/recall/internal/service/study"
)

// App holds the wired application components shared by the CLI commands.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Study  *study.Service

	pool *pgxpool.Pool
}

// New connects to the database and wires repositories into the study service.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	svc, err := study.NewService(
		logger,
		card.New(pool),
		cardstate.New(pool),
		reviewlog.New(pool),
		postgres.NewTxManager(pool),
		clockwork.NewRealClock(),
		study.ParseTimezone(cfg.Study.Timezone),
		cfg.SRS.ToDomain(),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create study service: %w", err)
	}

	logger.DebugContext(ctx, "application ready",
		slog.String("version", BuildVersion()),
		slog.String("timezone", cfg.Study.Timezone),
	)

	return &App{
		Config: cfg,
		Log:    logger,
		Study:  svc,
		pool:   pool,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}
