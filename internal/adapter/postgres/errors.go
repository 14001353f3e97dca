package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. ref identifies the
// row for error text (key or numeric id, already formatted).
//
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass
// through. Foreign-key and check violations are NOT mapped to domain
// sentinels either: request validation is the layer that guards those, so a
// violation reaching the database is an integrity failure, not client error.
func MapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: foreign key violation: %w", entity, ref, err)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: check violation: %w", entity, ref, err)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
