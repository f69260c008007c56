package domain

import (
	"fmt"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account is a named money container. Balance is the reconciled starting
// balance; the live total (balance plus unlocked transaction values) is a
// derived read served by the account service, never stored on the entity.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}

// Validate checks the account's field-local invariants.
func (a Account) Validate() error {
	verr := apperrors.NewValidationError()
	if len(a.Name) > MaxNameLength {
		verr.Add("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	if !DecimalInBounds(a.Balance) {
		verr.Add("balance", fmt.Sprintf("must fit %d digits with %d decimal places", MaxValueDigits, ValueDecimalPlaces))
	}
	return verr.ErrOrNil()
}
