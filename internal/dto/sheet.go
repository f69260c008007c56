package dto

import (
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
)

// CreateSheetRequest defines the data needed to create a new budget sheet.
// Month-range and (month, year) uniqueness checks are the domain's and
// service's concern respectively.
type CreateSheetRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Validate checks the request's transport-level constraints.
func (r CreateSheetRequest) Validate() error {
	return checkStruct(r)
}

// UpdateSheetRequest defines the data allowed when moving a sheet to another
// period. Use pointers to distinguish "not provided" from zero values.
type UpdateSheetRequest struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// Validate checks the request's transport-level constraints.
func (r UpdateSheetRequest) Validate() error {
	return checkStruct(r)
}

// SheetResponse defines the data returned for a sheet.
type SheetResponse struct {
	SheetID       string    `json:"sheetID"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSheetResponse converts a domain.Sheet to SheetResponse DTO
func ToSheetResponse(s *domain.Sheet) SheetResponse {
	return SheetResponse{
		SheetID:       s.SheetID,
		Month:         s.Month,
		Year:          s.Year,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}
