package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Partner:       m.Partner,
		Date:          m.Date,
		Value:         m.Value,
		CategoryID:    m.CategoryID,
		AccountID:     m.AccountID,
		Locked:        m.Locked,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Partner,
		&m.Date,
		&m.Value,
		&m.CategoryID,
		&m.AccountID,
		&m.Locked,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

const transactionColumns = `transaction_id, partner, date, value, category_id, account_id, locked, created_at, last_updated_at`

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, partner, date, value, category_id, account_id, locked, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		tx.TransactionID,
		tx.Partner,
		tx.Date,
		tx.Value,
		tx.CategoryID,
		tx.AccountID,
		tx.Locked,
		tx.CreatedAt,
		tx.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", tx.TransactionID, mapWriteError(err, domain.EntityTransaction, tx.TransactionID))
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	tx := toDomainTransaction(m)
	return &tx, nil
}

// FindTransactionsByDateRange retrieves transactions dated within [from, to],
// both bounds inclusive. No ordering is applied.
func (r *PgxTransactionRepository) FindTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE date >= $1 AND date <= $2;`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListTransactionsByAccount retrieves all transactions for an account.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1;`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// SumUnlockedValueByAccount returns the sum of values of all unlocked
// transactions on the account, zero when there are none.
func (r *PgxTransactionRepository) SumUnlockedValueByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM transactions
		WHERE account_id = $1 AND locked = FALSE;
	`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum unlocked transactions for account %s: %w", accountID, err)
	}
	return sum, nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	query := `
		UPDATE transactions
		SET partner = $2, date = $3, value = $4, category_id = $5, account_id = $6, locked = $7, last_updated_at = $8
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		tx.TransactionID,
		tx.Partner,
		tx.Date,
		tx.Value,
		tx.CategoryID,
		tx.AccountID,
		tx.Locked,
		tx.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", tx.TransactionID, mapWriteError(err, domain.EntityTransaction, tx.TransactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	cmdTag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return mapDeleteError(err, domain.EntityTransaction, transactionID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}
