package domain

import (
	"fmt"

	"github.com/budgeteer-app/backend/internal/apperrors"
)

// Category is a named tag applied to budget entries and transactions.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}

// Validate checks the category's field-local invariants.
func (c Category) Validate() error {
	verr := apperrors.NewValidationError()
	if c.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if len(c.Name) > MaxNameLength {
		verr.Add("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	return verr.ErrOrNil()
}
