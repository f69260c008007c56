package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the adapters translate into application errors.
const (
	pgNumericOverflow     = "22003"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// mapDeleteError translates a foreign-key violation raised by a DELETE into a
// ProtectionError. The schema only declares RESTRICT edges from transactions,
// so a 23503 on delete always means a transaction still points at the row.
func mapDeleteError(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return &apperrors.ProtectionError{Entity: entity, ID: id, ReferencedBy: "transaction"}
	}
	return err
}

// mapWriteError translates constraint violations raised by INSERT/UPDATE.
// Unique, CHECK, and numeric-overflow violations become IntegrityErrors: they
// can fire even when validation passed and are fatal to the attempted save. A
// foreign-key violation on write means a referenced row is missing.
func mapWriteError(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if strings.HasSuffix(pgErr.ConstraintName, "_pkey") {
			return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrDuplicate)
		}
		return &apperrors.IntegrityError{Constraint: pgErr.ConstraintName}
	case pgCheckViolation:
		return &apperrors.IntegrityError{Constraint: pgErr.ConstraintName}
	case pgNumericOverflow:
		// A DECIMAL(13,2) column rejecting a value that slipped past
		// validation. No constraint name accompanies 22003.
		return &apperrors.IntegrityError{Constraint: "numeric_value_out_of_range"}
	case pgForeignKeyViolation:
		return fmt.Errorf("%s %s references a missing row (%s): %w", entity, id, pgErr.ConstraintName, apperrors.ErrNotFound)
	}
	return err
}
