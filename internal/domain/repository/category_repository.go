package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// Create persists a new category. Names are unique.
	Create(ctx context.Context, category *entity.Category) error

	// Count returns the number of stored categories.
	Count(ctx context.Context) (int64, error)
}
