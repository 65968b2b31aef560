package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	// List returns active products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a product by ID, including inactive ones.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product. The caller stamps IsActive and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies the patch to the stored product and refreshes UpdatedAt.
	Update(ctx context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error)

	// Deactivate marks the product inactive. Deactivating twice is not an error.
	Deactivate(ctx context.Context, id string) error

	// CountActiveByArtisan returns the number of active products listed by the artisan.
	CountActiveByArtisan(ctx context.Context, artisanID string) (int64, error)
}
