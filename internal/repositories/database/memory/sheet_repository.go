package memory

import (
	"context"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
)

type memSheetRepository struct {
	store *Store
}

// Ensure memSheetRepository implements portsrepo.SheetRepositoryFacade
var _ portsrepo.SheetRepositoryFacade = (*memSheetRepository)(nil)

func toModelSheet(d domain.Sheet) models.Sheet {
	return models.Sheet{
		SheetID: d.SheetID,
		Month:   d.Month,
		Year:    d.Year,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainSheet(m models.Sheet) domain.Sheet {
	return domain.Sheet{
		SheetID: m.SheetID,
		Month:   m.Month,
		Year:    m.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// checkSheetConstraints mirrors the schema's CHECK (year >= 0) and the unique
// (month, year) index. It fires regardless of prior validation. Callers hold
// the lock.
func (r *memSheetRepository) checkSheetConstraints(sheet models.Sheet) error {
	if sheet.Year < 0 {
		return &apperrors.IntegrityError{Constraint: "sheets_year_non_negative"}
	}
	for _, other := range r.store.sheets {
		if other.SheetID != sheet.SheetID && other.Month == sheet.Month && other.Year == sheet.Year {
			return &apperrors.IntegrityError{Constraint: "sheets_month_year_unique"}
		}
	}
	return nil
}

func (r *memSheetRepository) SaveSheet(_ context.Context, sheet domain.Sheet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.sheets[sheet.SheetID]; exists {
		return duplicate(domain.EntitySheet, sheet.SheetID)
	}
	m := toModelSheet(sheet)
	if err := r.checkSheetConstraints(m); err != nil {
		return err
	}
	r.store.sheets[sheet.SheetID] = m
	return nil
}

func (r *memSheetRepository) FindSheetByID(_ context.Context, sheetID string) (*domain.Sheet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.sheets[sheetID]
	if !ok {
		return nil, notFound(domain.EntitySheet, sheetID)
	}
	s := toDomainSheet(m)
	return &s, nil
}

func (r *memSheetRepository) FindSheetByMonthYear(_ context.Context, month, year int) (*domain.Sheet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.sheets {
		if m.Month == month && m.Year == year {
			s := toDomainSheet(m)
			return &s, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memSheetRepository) ListSheets(_ context.Context) ([]domain.Sheet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sheets := make([]domain.Sheet, 0, len(r.store.sheets))
	for _, m := range r.store.sheets {
		sheets = append(sheets, toDomainSheet(m))
	}
	return sheets, nil
}

func (r *memSheetRepository) UpdateSheet(_ context.Context, sheet domain.Sheet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sheets[sheet.SheetID]; !ok {
		return notFound(domain.EntitySheet, sheet.SheetID)
	}
	m := toModelSheet(sheet)
	if err := r.checkSheetConstraints(m); err != nil {
		return err
	}
	r.store.sheets[sheet.SheetID] = m
	return nil
}

func (r *memSheetRepository) DeleteSheet(_ context.Context, sheetID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sheets[sheetID]; !ok {
		return notFound(domain.EntitySheet, sheetID)
	}
	if err := r.store.deleteReferenced(domain.EntitySheet, sheetID); err != nil {
		return err
	}
	delete(r.store.sheets, sheetID)
	return nil
}
