package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LockGuardedFields names the transaction fields frozen once the persisted row
// is locked. Locked itself is not part of the set: setting it on creation or
// flipping it false to true is always allowed.
var LockGuardedFields = [...]string{"partner", "date", "value", "category", "account"}

// Transaction is a dated, valued movement against an account and category.
// A locked transaction models a reconciled record: its guarded fields may not
// change for the rest of its lifetime.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Partner       string          `json:"partner"`
	Date          time.Time       `json:"date"` // calendar date, time-of-day ignored
	Value         decimal.Decimal `json:"value"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Locked        bool            `json:"locked"`
	AuditFields
}

// Validate checks the transaction's field-local invariants. The guarded-field
// immutability check needs the last-persisted row and lives in
// ValidateAgainstPersisted.
func (t Transaction) Validate() error {
	verr := apperrors.NewValidationError()
	if len(t.Partner) > MaxNameLength {
		verr.Add("partner", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	if !DecimalInBounds(t.Value) {
		verr.Add("value", fmt.Sprintf("must fit %d digits with %d decimal places", MaxValueDigits, ValueDecimalPlaces))
	}
	if t.CategoryID == "" {
		verr.Add("category", "must be set")
	}
	if t.AccountID == "" {
		verr.Add("account", "must be set")
	}
	return verr.ErrOrNil()
}

// ValidateAgainstPersisted runs Validate and, when the persisted row is
// locked, additionally rejects any change to the guarded fields. persisted is
// the row as last fetched from storage by primary key; nil means the
// transaction has not been persisted yet.
func (t Transaction) ValidateAgainstPersisted(persisted *Transaction) error {
	verr := apperrors.NewValidationError()
	if err := t.Validate(); err != nil {
		var fieldErr *apperrors.ValidationError
		if !errors.As(err, &fieldErr) {
			return err
		}
		for field, msgs := range fieldErr.Fields {
			for _, msg := range msgs {
				verr.Add(field, msg)
			}
		}
	}
	if persisted != nil && persisted.Locked {
		for _, field := range t.changedGuardedFields(*persisted) {
			verr.Add(field, "transaction is locked; field cannot be changed")
		}
	}
	return verr.ErrOrNil()
}

// changedGuardedFields returns the guarded fields whose candidate values
// differ from the persisted row, in LockGuardedFields order.
func (t Transaction) changedGuardedFields(persisted Transaction) []string {
	var changed []string
	for _, field := range LockGuardedFields {
		switch field {
		case "partner":
			if t.Partner != persisted.Partner {
				changed = append(changed, field)
			}
		case "date":
			if !sameDate(t.Date, persisted.Date) {
				changed = append(changed, field)
			}
		case "value":
			if !t.Value.Equal(persisted.Value) {
				changed = append(changed, field)
			}
		case "category":
			if t.CategoryID != persisted.CategoryID {
				changed = append(changed, field)
			}
		case "account":
			if t.AccountID != persisted.AccountID {
				changed = append(changed, field)
			}
		}
	}
	return changed
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
