package memory

import (
	"context"
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

type memTransactionRepository struct {
	store *Store
}

// Ensure memTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*memTransactionRepository)(nil)

// truncateToDate drops the time-of-day part; transactions live on a DATE column.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Partner:       d.Partner,
		Date:          truncateToDate(d.Date),
		Value:         d.Value,
		CategoryID:    d.CategoryID,
		AccountID:     d.AccountID,
		Locked:        d.Locked,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

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

// checkTransactionReferences mirrors the schema's NOT NULL foreign keys.
// Callers hold the lock.
func (r *memTransactionRepository) checkTransactionReferences(m models.Transaction) error {
	if _, ok := r.store.categories[m.CategoryID]; !ok {
		return notFound(domain.EntityCategory, m.CategoryID)
	}
	if _, ok := r.store.accounts[m.AccountID]; !ok {
		return notFound(domain.EntityAccount, m.AccountID)
	}
	return nil
}

func (r *memTransactionRepository) SaveTransaction(_ context.Context, transaction domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.transactions[transaction.TransactionID]; exists {
		return duplicate(domain.EntityTransaction, transaction.TransactionID)
	}
	m := toModelTransaction(transaction)
	if err := r.checkTransactionReferences(m); err != nil {
		return err
	}
	r.store.transactions[transaction.TransactionID] = m
	return nil
}

func (r *memTransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.transactions[transactionID]
	if !ok {
		return nil, notFound(domain.EntityTransaction, transactionID)
	}
	t := toDomainTransaction(m)
	return &t, nil
}

func (r *memTransactionRepository) FindTransactionsByDateRange(_ context.Context, from, to time.Time) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	fromDay := truncateToDate(from)
	toDay := truncateToDate(to)

	var transactions []domain.Transaction
	for _, m := range r.store.transactions {
		if !m.Date.Before(fromDay) && !m.Date.After(toDay) {
			transactions = append(transactions, toDomainTransaction(m))
		}
	}
	return transactions, nil
}

func (r *memTransactionRepository) ListTransactionsByAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var transactions []domain.Transaction
	for _, m := range r.store.transactions {
		if m.AccountID == accountID {
			transactions = append(transactions, toDomainTransaction(m))
		}
	}
	return transactions, nil
}

func (r *memTransactionRepository) SumUnlockedValueByAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sum := decimal.Zero
	for _, m := range r.store.transactions {
		if m.AccountID == accountID && !m.Locked {
			sum = sum.Add(m.Value)
		}
	}
	return sum, nil
}

func (r *memTransactionRepository) UpdateTransaction(_ context.Context, transaction domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[transaction.TransactionID]; !ok {
		return notFound(domain.EntityTransaction, transaction.TransactionID)
	}
	m := toModelTransaction(transaction)
	if err := r.checkTransactionReferences(m); err != nil {
		return err
	}
	r.store.transactions[transaction.TransactionID] = m
	return nil
}

func (r *memTransactionRepository) DeleteTransaction(_ context.Context, transactionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[transactionID]; !ok {
		return notFound(domain.EntityTransaction, transactionID)
	}
	delete(r.store.transactions, transactionID)
	return nil
}
