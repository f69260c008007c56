package repositories

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
)

// SheetEntryReader defines read operations for sheet entry data
type SheetEntryReader interface {
	// FindSheetEntryByID retrieves a specific entry by its unique identifier.
	FindSheetEntryByID(ctx context.Context, entryID string) (*domain.SheetEntry, error)

	// ListSheetEntriesBySheet retrieves all entries belonging to a sheet.
	ListSheetEntriesBySheet(ctx context.Context, sheetID string) ([]domain.SheetEntry, error)
}

// SheetEntryWriter defines write operations for sheet entry data
type SheetEntryWriter interface {
	// SaveSheetEntry persists a new entry.
	SaveSheetEntry(ctx context.Context, entry domain.SheetEntry) error

	// UpdateSheetEntry updates an existing entry.
	UpdateSheetEntry(ctx context.Context, entry domain.SheetEntry) error

	// DeleteSheetEntry removes a single entry. Cascade deletion of a whole
	// sheet's entries happens through DeleteSheet/DeleteCategory.
	DeleteSheetEntry(ctx context.Context, entryID string) error
}

// SheetEntryRepositoryFacade combines all entry-related repository interfaces
type SheetEntryRepositoryFacade interface {
	SheetEntryReader
	SheetEntryWriter
}
