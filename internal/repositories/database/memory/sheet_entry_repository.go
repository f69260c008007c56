package memory

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
)

type memSheetEntryRepository struct {
	store *Store
}

// Ensure memSheetEntryRepository implements portsrepo.SheetEntryRepositoryFacade
var _ portsrepo.SheetEntryRepositoryFacade = (*memSheetEntryRepository)(nil)

func toModelSheetEntry(d domain.SheetEntry) models.SheetEntry {
	return models.SheetEntry{
		EntryID:    d.EntryID,
		SheetID:    d.SheetID,
		CategoryID: d.CategoryID,
		Value:      d.Value,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainSheetEntry(m models.SheetEntry) domain.SheetEntry {
	return domain.SheetEntry{
		EntryID:    m.EntryID,
		SheetID:    m.SheetID,
		CategoryID: m.CategoryID,
		Value:      m.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *memSheetEntryRepository) SaveSheetEntry(_ context.Context, entry domain.SheetEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.entries[entry.EntryID]; exists {
		return duplicate(domain.EntitySheetEntry, entry.EntryID)
	}
	if _, ok := r.store.sheets[entry.SheetID]; !ok {
		return notFound(domain.EntitySheet, entry.SheetID)
	}
	if _, ok := r.store.categories[entry.CategoryID]; !ok {
		return notFound(domain.EntityCategory, entry.CategoryID)
	}
	r.store.entries[entry.EntryID] = toModelSheetEntry(entry)
	return nil
}

func (r *memSheetEntryRepository) FindSheetEntryByID(_ context.Context, entryID string) (*domain.SheetEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.entries[entryID]
	if !ok {
		return nil, notFound(domain.EntitySheetEntry, entryID)
	}
	e := toDomainSheetEntry(m)
	return &e, nil
}

func (r *memSheetEntryRepository) ListSheetEntriesBySheet(_ context.Context, sheetID string) ([]domain.SheetEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var entries []domain.SheetEntry
	for _, m := range r.store.entries {
		if m.SheetID == sheetID {
			entries = append(entries, toDomainSheetEntry(m))
		}
	}
	return entries, nil
}

func (r *memSheetEntryRepository) UpdateSheetEntry(_ context.Context, entry domain.SheetEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.entries[entry.EntryID]; !ok {
		return notFound(domain.EntitySheetEntry, entry.EntryID)
	}
	r.store.entries[entry.EntryID] = toModelSheetEntry(entry)
	return nil
}

func (r *memSheetEntryRepository) DeleteSheetEntry(_ context.Context, entryID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.entries[entryID]; !ok {
		return notFound(domain.EntitySheetEntry, entryID)
	}
	delete(r.store.entries, entryID)
	return nil
}
