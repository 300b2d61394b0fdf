// Package prefs implements the client preference repository using PostgreSQL.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/MauritiusChief/toki-ante/internal/adapter/postgres"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

const (
	table  = "client_prefs"
	entity = "client_prefs"

	updateAttempts = 3
)

var columns = []string{"client_id", "preset_id", "custom_csv", "custom_digest", "last_name", "updated_at"}

// Repo provides client preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new preference repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// Get returns the preferences of a client.
// Returns domain.ErrNotFound if the client has none.
func (r *Repo) Get(ctx context.Context, clientID uuid.UUID) (*domain.Prefs, error) {
	return r.get(ctx, clientID, false)
}

// Update applies fn to the client's preferences, creating them if missing,
// and stores the result. The read and the write share one transaction and
// the row stays locked in between; a deadlock reruns the transaction.
func (r *Repo) Update(ctx context.Context, clientID uuid.UUID, fn func(p *domain.Prefs)) (*domain.Prefs, error) {
	var out *domain.Prefs

	err := r.txm.RunRetrying(ctx, updateAttempts, func(ctx context.Context) error {
		p, err := r.get(ctx, clientID, true)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			p = &domain.Prefs{ClientID: clientID}
		case err != nil:
			return err
		}

		fn(p)
		p.ClientID = clientID
		p.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		if err := r.upsert(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteIdle removes preferences not updated since before and returns how
// many were removed.
func (r *Repo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) get(ctx context.Context, clientID uuid.UUID, forUpdate bool) (*domain.Prefs, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"client_id": clientID})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p, err := scanPrefs(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, clientID)
	}
	return p, nil
}

func (r *Repo) upsert(ctx context.Context, p *domain.Prefs) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ClientID, p.PresetID, p.CustomCSV, p.CustomDigest, p.LastName, p.UpdatedAt).
		Suffix(`ON CONFLICT (client_id) DO UPDATE SET
			preset_id = EXCLUDED.preset_id,
			custom_csv = EXCLUDED.custom_csv,
			custom_digest = EXCLUDED.custom_digest,
			last_name = EXCLUDED.last_name,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, p.ClientID)
	}
	return nil
}

func scanPrefs(row pgx.Row) (*domain.Prefs, error) {
	var p domain.Prefs
	if err := row.Scan(&p.ClientID, &p.PresetID, &p.CustomCSV, &p.CustomDigest, &p.LastName, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
