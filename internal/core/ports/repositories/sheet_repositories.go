package repositories

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
)

// SheetReader defines read operations for sheet data
type SheetReader interface {
	// FindSheetByID retrieves a specific sheet by its unique identifier.
	FindSheetByID(ctx context.Context, sheetID string) (*domain.Sheet, error)

	// FindSheetByMonthYear retrieves the sheet for a (month, year) pair, or
	// apperrors.ErrNotFound when none exists. Used for the natural-key
	// uniqueness check.
	FindSheetByMonthYear(ctx context.Context, month, year int) (*domain.Sheet, error)

	// ListSheets retrieves all sheets.
	ListSheets(ctx context.Context) ([]domain.Sheet, error)
}

// SheetWriter defines write operations for sheet data
type SheetWriter interface {
	// SaveSheet persists a new sheet. Storage rejects negative years and
	// duplicate (month, year) pairs with an IntegrityError even when
	// validation passed.
	SaveSheet(ctx context.Context, sheet domain.Sheet) error

	// UpdateSheet updates an existing sheet.
	UpdateSheet(ctx context.Context, sheet domain.Sheet) error

	// DeleteSheet removes a sheet and cascade-deletes its entries.
	DeleteSheet(ctx context.Context, sheetID string) error
}

// SheetRepositoryFacade combines all sheet-related repository interfaces
type SheetRepositoryFacade interface {
	SheetReader
	SheetWriter
}
