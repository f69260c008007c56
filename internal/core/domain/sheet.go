package domain

import (
	"fmt"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
)

// Sheet is a monthly budget period. The (Month, Year) pair is unique across
// all sheets; uniqueness is checked by the service against stored rows.
type Sheet struct {
	SheetID string `json:"sheetID"` // Primary Key (UUID)
	Month   int    `json:"month"`   // 1..12
	Year    int    `json:"year"`
	AuditFields
}

// Validate checks the sheet's field-local invariants. The (Month, Year)
// uniqueness check and the non-negative year constraint are enforced against
// storage, not here.
func (s Sheet) Validate() error {
	verr := apperrors.NewValidationError()
	if s.Month < 1 || s.Month > 12 {
		verr.Add("month", fmt.Sprintf("must be between 1 and 12, got %d", s.Month))
	}
	return verr.ErrOrNil()
}

// MonthInterval returns the first and last calendar day of the sheet's month.
// time.Date normalizes day 0 of the following month to the last day of this
// one, which handles leap years.
func (s Sheet) MonthInterval() (first, last time.Time) {
	first = time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(s.Year, time.Month(s.Month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}
