// Package memory implements the repository ports over in-process maps. It
// mirrors the relational schema's behavior — unique indexes, CHECK
// constraints, and the per-relationship deletion policies — so tests and
// ephemeral runs exercise the same storage semantics as the pgsql adapter.
package memory

import (
	"fmt"
	"sync"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
)

// Store is the shared backing state for all in-memory repositories.
type Store struct {
	mu           sync.RWMutex
	categories   map[string]models.Category
	sheets       map[string]models.Sheet
	entries      map[string]models.SheetEntry
	accounts     map[string]models.Account
	transactions map[string]models.Transaction
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		categories:   make(map[string]models.Category),
		sheets:       make(map[string]models.Sheet),
		entries:      make(map[string]models.SheetEntry),
		accounts:     make(map[string]models.Account),
		transactions: make(map[string]models.Transaction),
	}
}

// NewRepositoryProvider wires all in-memory repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    &memCategoryRepository{store: store},
		SheetRepo:       &memSheetRepository{store: store},
		SheetEntryRepo:  &memSheetEntryRepository{store: store},
		AccountRepo:     &memAccountRepository{store: store},
		TransactionRepo: &memTransactionRepository{store: store},
	}
}

// deleteReferenced applies the deletion-policy table for a referenced entity:
// it reports a ProtectionError when a protecting dependent exists and
// otherwise removes cascading dependents. Callers hold the write lock.
func (s *Store) deleteReferenced(entity, id string) error {
	// Protect edges first: a single protecting row vetoes the whole delete.
	if policy, ok := domain.PolicyFor(domain.EntityTransaction, entity); ok && policy == domain.Protect {
		for _, tx := range s.transactions {
			if (entity == domain.EntityCategory && tx.CategoryID == id) ||
				(entity == domain.EntityAccount && tx.AccountID == id) {
				return &apperrors.ProtectionError{Entity: entity, ID: id, ReferencedBy: domain.EntityTransaction}
			}
		}
	}

	if policy, ok := domain.PolicyFor(domain.EntitySheetEntry, entity); ok && policy == domain.Cascade {
		for entryID, entry := range s.entries {
			if (entity == domain.EntitySheet && entry.SheetID == id) ||
				(entity == domain.EntityCategory && entry.CategoryID == id) {
				delete(s.entries, entryID)
			}
		}
	}
	return nil
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrNotFound)
}

func duplicate(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrDuplicate)
}
