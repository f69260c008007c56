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

type PgxSheetEntryRepository struct {
	pool *pgxpool.Pool
}

// newPgxSheetEntryRepository creates a new repository for sheet entry data.
func newPgxSheetEntryRepository(pool *pgxpool.Pool) portsrepo.SheetEntryRepositoryFacade {
	return &PgxSheetEntryRepository{pool: pool}
}

// Ensure PgxSheetEntryRepository implements portsrepo.SheetEntryRepositoryFacade
var _ portsrepo.SheetEntryRepositoryFacade = (*PgxSheetEntryRepository)(nil)

func toDomainSheetEntry(m models.SheetEntry) domain.SheetEntry {
	return domain.SheetEntry{
		EntryID:    m.EntryID,
		SheetID:    m.SheetID,
		CategoryID: m.CategoryID,
		Value:      m.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveSheetEntry inserts a new entry.
func (r *PgxSheetEntryRepository) SaveSheetEntry(ctx context.Context, entry domain.SheetEntry) error {
	query := `
		INSERT INTO sheet_entries (entry_id, sheet_id, category_id, value, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.SheetID,
		entry.CategoryID,
		entry.Value,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sheet entry %s: %w", entry.EntryID, mapWriteError(err, domain.EntitySheetEntry, entry.EntryID))
	}
	return nil
}

// FindSheetEntryByID retrieves an entry by its ID.
func (r *PgxSheetEntryRepository) FindSheetEntryByID(ctx context.Context, entryID string) (*domain.SheetEntry, error) {
	query := `
		SELECT entry_id, sheet_id, category_id, value, created_at, last_updated_at
		FROM sheet_entries
		WHERE entry_id = $1;
	`
	var m models.SheetEntry
	err := r.pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.SheetID,
		&m.CategoryID,
		&m.Value,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sheet entry by ID %s: %w", entryID, err)
	}

	entry := toDomainSheetEntry(m)
	return &entry, nil
}

// ListSheetEntriesBySheet retrieves all entries belonging to a sheet.
func (r *PgxSheetEntryRepository) ListSheetEntriesBySheet(ctx context.Context, sheetID string) ([]domain.SheetEntry, error) {
	query := `
		SELECT entry_id, sheet_id, category_id, value, created_at, last_updated_at
		FROM sheet_entries
		WHERE sheet_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheet entries for sheet %s: %w", sheetID, err)
	}
	defer rows.Close()

	entries := []domain.SheetEntry{}
	for rows.Next() {
		var m models.SheetEntry
		if err := rows.Scan(&m.EntryID, &m.SheetID, &m.CategoryID, &m.Value, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sheet entry row: %w", err)
		}
		entries = append(entries, toDomainSheetEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheet entry rows: %w", err)
	}
	return entries, nil
}

// UpdateSheetEntry updates an existing entry.
func (r *PgxSheetEntryRepository) UpdateSheetEntry(ctx context.Context, entry domain.SheetEntry) error {
	query := `
		UPDATE sheet_entries
		SET value = $2, last_updated_at = $3
		WHERE entry_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.Value,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sheet entry %s: %w", entry.EntryID, mapWriteError(err, domain.EntitySheetEntry, entry.EntryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSheetEntry removes a single entry.
func (r *PgxSheetEntryRepository) DeleteSheetEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM sheet_entries WHERE entry_id = $1;`
	cmdTag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return mapDeleteError(err, domain.EntitySheetEntry, entryID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
