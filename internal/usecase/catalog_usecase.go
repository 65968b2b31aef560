package usecase

import (
	"context"

	"artisanconnect/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// CatalogUsecase manages product categories.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	// SeedDefaultCategories creates the default categories when none exist and returns how many were created.
	SeedDefaultCategories(ctx context.Context) (int, error)
}
