package repository

import (
	"context"

	"artisanconnect/internal/domain/entity"
)

// FavoriteRepository defines persistence operations for saved products.
type FavoriteRepository interface {
	// ListProducts returns the active products favorited by the user, newest favorite first.
	ListProducts(ctx context.Context, userID string) ([]*entity.Product, error)

	// Add stores the favorite, or returns the existing one for the same (user, product) pair.
	Add(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error)

	// Remove deletes every favorite for the (user, product) pair. Removing a missing favorite is not an error.
	Remove(ctx context.Context, userID, productID string) error
}
