package services

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/budgeteer-app/backend/internal/dto"
)

// SheetReaderSvc defines read operations for sheet data
type SheetReaderSvc interface {
	// GetSheetByID retrieves a specific sheet by its unique identifier.
	GetSheetByID(ctx context.Context, sheetID string) (*domain.Sheet, error)

	// ListSheets retrieves all sheets.
	ListSheets(ctx context.Context) ([]domain.Sheet, error)

	// SheetTransactions returns every transaction dated within the sheet's
	// calendar month. Order is not guaranteed; the result is recomputed from
	// live storage on each call.
	SheetTransactions(ctx context.Context, sheetID string) ([]domain.Transaction, error)
}

// SheetWriterSvc defines write operations for sheet data
type SheetWriterSvc interface {
	// CreateSheet validates and persists a new sheet.
	CreateSheet(ctx context.Context, req dto.CreateSheetRequest) (*domain.Sheet, error)

	// UpdateSheet re-validates and updates an existing sheet. The (month,
	// year) uniqueness check excludes the sheet's own row.
	UpdateSheet(ctx context.Context, sheetID string, req dto.UpdateSheetRequest) (*domain.Sheet, error)

	// DeleteSheet removes a sheet along with its entries.
	DeleteSheet(ctx context.Context, sheetID string) error
}

// SheetSvcFacade combines all sheet-related service interfaces
type SheetSvcFacade interface {
	SheetReaderSvc
	SheetWriterSvc
}
