package dto

import (
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSheetEntryRequest defines the data needed to plan an amount for a
// (sheet, category) pair.
type CreateSheetEntryRequest struct {
	SheetID    string          `json:"sheetID" validate:"required"`
	CategoryID string          `json:"categoryID" validate:"required"`
	Value      decimal.Decimal `json:"value"`
}

// Validate checks the request's transport-level constraints.
func (r CreateSheetEntryRequest) Validate() error {
	return checkStruct(r)
}

// UpdateSheetEntryRequest defines the data allowed when replanning an entry.
type UpdateSheetEntryRequest struct {
	Value decimal.Decimal `json:"value"`
}

// Validate checks the request's transport-level constraints.
func (r UpdateSheetEntryRequest) Validate() error {
	return checkStruct(r)
}

// SheetEntryResponse defines the data returned for a sheet entry.
type SheetEntryResponse struct {
	EntryID       string          `json:"entryID"`
	SheetID       string          `json:"sheetID"`
	CategoryID    string          `json:"categoryID"`
	Value         decimal.Decimal `json:"value"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToSheetEntryResponse converts a domain.SheetEntry to SheetEntryResponse DTO
func ToSheetEntryResponse(e *domain.SheetEntry) SheetEntryResponse {
	return SheetEntryResponse{
		EntryID:       e.EntryID,
		SheetID:       e.SheetID,
		CategoryID:    e.CategoryID,
		Value:         e.Value,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}
