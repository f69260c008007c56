package services

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/budgeteer-app/backend/internal/dto"
)

// SheetEntryReaderSvc defines read operations for sheet entry data
type SheetEntryReaderSvc interface {
	// GetSheetEntryByID retrieves a specific entry by its unique identifier.
	GetSheetEntryByID(ctx context.Context, entryID string) (*domain.SheetEntry, error)

	// ListSheetEntriesBySheet retrieves all entries belonging to a sheet.
	ListSheetEntriesBySheet(ctx context.Context, sheetID string) ([]domain.SheetEntry, error)
}

// SheetEntryWriterSvc defines write operations for sheet entry data
type SheetEntryWriterSvc interface {
	// CreateSheetEntry validates and persists a new entry for a (sheet,
	// category) pair.
	CreateSheetEntry(ctx context.Context, req dto.CreateSheetEntryRequest) (*domain.SheetEntry, error)

	// UpdateSheetEntryValue re-validates and updates an entry's planned value.
	UpdateSheetEntryValue(ctx context.Context, entryID string, req dto.UpdateSheetEntryRequest) (*domain.SheetEntry, error)

	// DeleteSheetEntry removes a single entry.
	DeleteSheetEntry(ctx context.Context, entryID string) error
}

// SheetEntrySvcFacade combines all entry-related service interfaces
type SheetEntrySvcFacade interface {
	SheetEntryReaderSvc
	SheetEntryWriterSvc
}
