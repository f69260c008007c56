package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSheetRepository struct {
	pool *pgxpool.Pool
}

// newPgxSheetRepository creates a new repository for sheet data.
func newPgxSheetRepository(pool *pgxpool.Pool) portsrepo.SheetRepositoryFacade {
	return &PgxSheetRepository{pool: pool}
}

// Ensure PgxSheetRepository implements portsrepo.SheetRepositoryFacade
var _ portsrepo.SheetRepositoryFacade = (*PgxSheetRepository)(nil)

func toDomainSheet(m models.Sheet) domain.Sheet {
	return domain.Sheet{
		SheetID: m.SheetID,
		Month:   m.Month,
		Year:    m.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveSheet inserts a new sheet. The sheets_year_non_negative CHECK and the
// sheets_month_year_unique index reject bad rows here even when validation
// passed.
func (r *PgxSheetRepository) SaveSheet(ctx context.Context, sheet domain.Sheet) error {
	query := `
		INSERT INTO sheets (sheet_id, month, year, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		sheet.SheetID,
		sheet.Month,
		sheet.Year,
		sheet.CreatedAt,
		sheet.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sheet %s: %w", sheet.SheetID, mapWriteError(err, domain.EntitySheet, sheet.SheetID))
	}
	return nil
}

// FindSheetByID retrieves a sheet by its ID.
func (r *PgxSheetRepository) FindSheetByID(ctx context.Context, sheetID string) (*domain.Sheet, error) {
	query := `
		SELECT sheet_id, month, year, created_at, last_updated_at
		FROM sheets
		WHERE sheet_id = $1;
	`
	var m models.Sheet
	err := r.pool.QueryRow(ctx, query, sheetID).Scan(
		&m.SheetID,
		&m.Month,
		&m.Year,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sheet by ID %s: %w", sheetID, err)
	}

	sheet := toDomainSheet(m)
	return &sheet, nil
}

// FindSheetByMonthYear retrieves the sheet for a (month, year) pair.
func (r *PgxSheetRepository) FindSheetByMonthYear(ctx context.Context, month, year int) (*domain.Sheet, error) {
	query := `
		SELECT sheet_id, month, year, created_at, last_updated_at
		FROM sheets
		WHERE month = $1 AND year = $2;
	`
	var m models.Sheet
	err := r.pool.QueryRow(ctx, query, month, year).Scan(
		&m.SheetID,
		&m.Month,
		&m.Year,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sheet for %d/%d: %w", month, year, err)
	}

	sheet := toDomainSheet(m)
	return &sheet, nil
}

// ListSheets retrieves all sheets ordered by period.
func (r *PgxSheetRepository) ListSheets(ctx context.Context) ([]domain.Sheet, error) {
	query := `
		SELECT sheet_id, month, year, created_at, last_updated_at
		FROM sheets
		ORDER BY year, month;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheets: %w", err)
	}
	defer rows.Close()

	sheets := []domain.Sheet{}
	for rows.Next() {
		var m models.Sheet
		if err := rows.Scan(&m.SheetID, &m.Month, &m.Year, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sheet row: %w", err)
		}
		sheets = append(sheets, toDomainSheet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheet rows: %w", err)
	}
	return sheets, nil
}

// UpdateSheet updates an existing sheet.
func (r *PgxSheetRepository) UpdateSheet(ctx context.Context, sheet domain.Sheet) error {
	query := `
		UPDATE sheets
		SET month = $2, year = $3, last_updated_at = $4
		WHERE sheet_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		sheet.SheetID,
		sheet.Month,
		sheet.Year,
		sheet.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sheet %s: %w", sheet.SheetID, mapWriteError(err, domain.EntitySheet, sheet.SheetID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSheet removes a sheet; its entries cascade at the schema level.
func (r *PgxSheetRepository) DeleteSheet(ctx context.Context, sheetID string) error {
	query := `DELETE FROM sheets WHERE sheet_id = $1;`
	cmdTag, err := r.pool.Exec(ctx, query, sheetID)
	if err != nil {
		return mapDeleteError(err, domain.EntitySheet, sheetID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
