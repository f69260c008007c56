package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/google/uuid"
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryServiceImpl creates a new category service
func NewCategoryServiceImpl(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: repo}
}

// Ensure categoryServiceImpl implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogDebug(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *categoryServiceImpl) RenameCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.LastUpdatedAt = time.Now()

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	// Protect-on-delete for transactions and cascade for sheet entries are
	// enforced by the repository per the deletion-policy table.
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	return nil
}
