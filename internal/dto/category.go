package dto

import (
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// Validate checks the request's transport-level constraints.
func (r CreateCategoryRequest) Validate() error {
	return checkStruct(r)
}

// UpdateCategoryRequest defines the data allowed when renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// Validate checks the request's transport-level constraints.
func (r UpdateCategoryRequest) Validate() error {
	return checkStruct(r)
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}
