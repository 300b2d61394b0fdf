package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// SQLSTATE codes mapped to domain errors. Codes not listed fall back to
// their class.
var codeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

var classErrors = map[string]error{
	"22": domain.ErrValidation, // data_exception
	"40": domain.ErrConflict,   // transaction_rollback
}

// MapError converts pgx errors to domain errors, prefixed with the entity
// and, when set, the id. Context errors pass through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != uuid.Nil {
		prefix += " " + id.String()
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := codeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w", prefix, mapped)
		}
		if len(pgErr.Code) == 5 {
			if mapped, ok := classErrors[pgErr.Code[:2]]; ok {
				return fmt.Errorf("%s: %w (%s)", prefix, mapped, pgErr.Code)
			}
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}

// IsRetryable reports whether err is a serialization failure or deadlock,
// raw or mapped by MapError, worth retrying in a fresh transaction.
func IsRetryable(err error) bool {
	if errors.Is(err, domain.ErrConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
