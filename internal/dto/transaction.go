package dto

import (
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Locked defaults to false when left unset.
type CreateTransactionRequest struct {
	Partner    string          `json:"partner" validate:"max=200"`
	Date       time.Time       `json:"date" validate:"required"`
	Value      decimal.Decimal `json:"value"`
	CategoryID string          `json:"categoryID" validate:"required"`
	AccountID  string          `json:"accountID" validate:"required"`
	Locked     bool            `json:"locked"`
}

// Validate checks the request's transport-level constraints.
func (r CreateTransactionRequest) Validate() error {
	return checkStruct(r)
}

// UpdateTransactionRequest defines the data allowed when editing a
// transaction. Use pointers to distinguish between zero-value updates and
// fields not provided; fields left nil keep their persisted values, which is
// what lets an update of a locked row pass as long as no guarded field
// actually changes.
type UpdateTransactionRequest struct {
	Partner    *string          `json:"partner" validate:"omitempty,max=200"`
	Date       *time.Time       `json:"date"`
	Value      *decimal.Decimal `json:"value"`
	CategoryID *string          `json:"categoryID"`
	AccountID  *string          `json:"accountID"`
	Locked     *bool            `json:"locked"`
}

// Validate checks the request's transport-level constraints.
func (r UpdateTransactionRequest) Validate() error {
	return checkStruct(r)
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Partner       string          `json:"partner"`
	Date          time.Time       `json:"date"`
	Value         decimal.Decimal `json:"value"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Locked        bool            `json:"locked"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Partner:       t.Partner,
		Date:          t.Date,
		Value:         t.Value,
		CategoryID:    t.CategoryID,
		AccountID:     t.AccountID,
		Locked:        t.Locked,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}
