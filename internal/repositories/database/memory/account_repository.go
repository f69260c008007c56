package memory

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
)

type memAccountRepository struct {
	store *Store
}

// Ensure memAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*memAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		Name:      d.Name,
		Balance:   d.Balance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Name:      m.Name,
		Balance:   m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *memAccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.accounts[account.AccountID]; exists {
		return duplicate(domain.EntityAccount, account.AccountID)
	}
	r.store.accounts[account.AccountID] = toModelAccount(account)
	return nil
}

func (r *memAccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.accounts[accountID]
	if !ok {
		return nil, notFound(domain.EntityAccount, accountID)
	}
	a := toDomainAccount(m)
	return &a, nil
}

func (r *memAccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.store.accounts))
	for _, m := range r.store.accounts {
		accounts = append(accounts, toDomainAccount(m))
	}
	return accounts, nil
}

func (r *memAccountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.AccountID]; !ok {
		return notFound(domain.EntityAccount, account.AccountID)
	}
	r.store.accounts[account.AccountID] = toModelAccount(account)
	return nil
}

func (r *memAccountRepository) DeleteAccount(_ context.Context, accountID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[accountID]; !ok {
		return notFound(domain.EntityAccount, accountID)
	}
	if err := r.store.deleteReferenced(domain.EntityAccount, accountID); err != nil {
		return err
	}
	delete(r.store.accounts, accountID)
	return nil
}
