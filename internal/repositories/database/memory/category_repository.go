package memory

import (
	"context"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/models"
)

type memCategoryRepository struct {
	store *Store
}

// Ensure memCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*memCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *memCategoryRepository) SaveCategory(_ context.Context, category domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.categories[category.CategoryID]; exists {
		return duplicate(domain.EntityCategory, category.CategoryID)
	}
	r.store.categories[category.CategoryID] = toModelCategory(category)
	return nil
}

func (r *memCategoryRepository) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.categories[categoryID]
	if !ok {
		return nil, notFound(domain.EntityCategory, categoryID)
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *memCategoryRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.store.categories))
	for _, m := range r.store.categories {
		categories = append(categories, toDomainCategory(m))
	}
	return categories, nil
}

func (r *memCategoryRepository) UpdateCategory(_ context.Context, category domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.CategoryID]; !ok {
		return notFound(domain.EntityCategory, category.CategoryID)
	}
	r.store.categories[category.CategoryID] = toModelCategory(category)
	return nil
}

func (r *memCategoryRepository) DeleteCategory(_ context.Context, categoryID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[categoryID]; !ok {
		return notFound(domain.EntityCategory, categoryID)
	}
	if err := r.store.deleteReferenced(domain.EntityCategory, categoryID); err != nil {
		return err
	}
	delete(r.store.categories, categoryID)
	return nil
}
