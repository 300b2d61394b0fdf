package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MauritiusChief/toki-ante/internal/adapter/postgres"
	pgprefs "github.com/MauritiusChief/toki-ante/internal/adapter/postgres/prefs"
	"github.com/MauritiusChief/toki-ante/internal/adapter/sqlite"
	"github.com/MauritiusChief/toki-ante/internal/config"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// Store is the preference store selected by configuration.
type Store interface {
	Get(ctx context.Context, clientID uuid.UUID) (*domain.Prefs, error)
	Update(ctx context.Context, clientID uuid.UUID, fn func(p *domain.Prefs)) (*domain.Prefs, error)
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore opens and migrates the configured preference store.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return &postgresStore{
			Repo: pgprefs.New(pool, postgres.NewTxManager(pool)),
			pool: pool,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

type postgresStore struct {
	*pgprefs.Repo
	pool *pgxpool.Pool
}

func (s *postgresStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
