// Package sqlite implements the client preference store on an embedded
// SQLite database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

const (
	driverName = "sqlite"
	table      = "client_prefs"
	entity     = "client_prefs"
)

var columns = []string{"client_id", "preset_id", "custom_csv", "custom_digest", "last_name", "updated_at"}

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Store provides client preference persistence backed by SQLite.
type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// Open opens (creating if needed) the database at path and applies pending
// migrations. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection: writers serialize and ":memory:" stays a single database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Get returns the preferences of a client.
// Returns domain.ErrNotFound if the client has none.
func (s *Store) Get(ctx context.Context, clientID uuid.UUID) (*domain.Prefs, error) {
	return s.get(ctx, s.db, clientID)
}

// Update applies fn to the client's preferences, creating them if missing,
// and stores the result in one transaction.
func (s *Store) Update(ctx context.Context, clientID uuid.UUID, fn func(p *domain.Prefs)) (*domain.Prefs, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	p, err := s.get(ctx, tx, clientID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = &domain.Prefs{ClientID: clientID}
	case err != nil:
		return nil, err
	}

	fn(p)
	p.ClientID = clientID
	p.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	if err := s.upsert(ctx, tx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return p, nil
}

// DeleteIdle removes preferences not updated since before and returns how
// many were removed.
func (s *Store) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := s.builder.
		Delete(table).
		Where(sq.Lt{"updated_at": before.UnixMicro()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, entity, uuid.Nil)
	}
	return res.RowsAffected()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) get(ctx context.Context, q querier, clientID uuid.UUID) (*domain.Prefs, error) {
	query, args, err := s.builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"client_id": clientID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var (
		p       domain.Prefs
		rawID   string
		updated int64
	)
	err = q.QueryRowContext(ctx, query, args...).
		Scan(&rawID, &p.PresetID, &p.CustomCSV, &p.CustomDigest, &p.LastName, &updated)
	if err != nil {
		return nil, mapError(err, entity, clientID)
	}

	p.ClientID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse client_id %q: %w", rawID, err)
	}
	p.UpdatedAt = time.UnixMicro(updated).UTC()
	return &p, nil
}

func (s *Store) upsert(ctx context.Context, q querier, p *domain.Prefs) error {
	query, args, err := s.builder.
		Insert(table).
		Columns(columns...).
		Values(p.ClientID.String(), p.PresetID, p.CustomCSV, p.CustomDigest, p.LastName, p.UpdatedAt.UnixMicro()).
		Suffix(`ON CONFLICT (client_id) DO UPDATE SET
			preset_id = excluded.preset_id,
			custom_csv = excluded.custom_csv,
			custom_digest = excluded.custom_digest,
			last_name = excluded.last_name,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, entity, p.ClientID)
	}
	return nil
}

// Migrations returns the embedded goose migrations.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

func migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, Migrations())
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.String("adapter", "sqlite"),
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// mapError converts SQLite errors into domain errors, mirroring the
// PostgreSQL adapter.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
