package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// SeedPrefs inserts a preference row for a fresh client selecting presetID.
func SeedPrefs(t *testing.T, pool *pgxpool.Pool, presetID, name string) domain.Prefs {
	t.Helper()

	p := domain.Prefs{
		ClientID:  uuid.New(),
		PresetID:  presetID,
		LastName:  name,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO client_prefs (client_id, preset_id, last_name, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		p.ClientID, p.PresetID, p.LastName, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("SeedPrefs: %v", err)
	}

	return p
}
