package dto

import (
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name    string          `json:"name" validate:"max=200"`
	Balance decimal.Decimal `json:"balance"`
}

// Validate checks the request's transport-level constraints.
func (r CreateAccountRequest) Validate() error {
	return checkStruct(r)
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name    *string          `json:"name" validate:"omitempty,max=200"`
	Balance *decimal.Decimal `json:"balance"`
}

// Validate checks the request's transport-level constraints.
func (r UpdateAccountRequest) Validate() error {
	return checkStruct(r)
}

// AccountResponse defines the data returned for an account. Total is the
// derived live total, computed at response-build time.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account plus its computed total to an
// AccountResponse DTO
func ToAccountResponse(a *domain.Account, total decimal.Decimal) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Name:          a.Name,
		Balance:       a.Balance,
		Total:         total,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}
