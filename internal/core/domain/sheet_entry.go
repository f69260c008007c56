package domain

import (
	"fmt"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SheetEntry is the planned amount for a (Sheet, Category) pair. It is owned
// by its sheet and removed together with it; deleting the referenced category
// removes the entry as well.
type SheetEntry struct {
	EntryID    string          `json:"entryID"` // Primary Key (UUID)
	SheetID    string          `json:"sheetID"`
	CategoryID string          `json:"categoryID"`
	Value      decimal.Decimal `json:"value"`
	AuditFields
}

// Validate checks the entry's field-local invariants.
func (e SheetEntry) Validate() error {
	verr := apperrors.NewValidationError()
	if e.SheetID == "" {
		verr.Add("sheet", "must be set")
	}
	if e.CategoryID == "" {
		verr.Add("category", "must be set")
	}
	if !DecimalInBounds(e.Value) {
		verr.Add("value", fmt.Sprintf("must fit %d digits with %d decimal places", MaxValueDigits, ValueDecimalPlaces))
	}
	return verr.ErrOrNil()
}
