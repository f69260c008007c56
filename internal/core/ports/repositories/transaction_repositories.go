package repositories

import (
	"context"
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique
	// identifier. This is the re-fetch the locked-field check relies on.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByDateRange retrieves all transactions dated within
	// [from, to], inclusive on both ends. Order is not guaranteed.
	FindTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves all transactions on an account.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// SumUnlockedValueByAccount returns the sum of the values of all unlocked
	// transactions on an account. Locked transactions are already reflected in
	// the account balance by the external reconciliation process.
	SumUnlockedValueByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
