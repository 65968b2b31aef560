package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

// ErrReviewAlreadyExists is returned when the buyer has already reviewed the product.
var ErrReviewAlreadyExists = errors.New("review already exists")

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	// ListByProduct returns the reviews of a product, newest first.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)

	// Create persists a new review. One review per (buyer, product).
	Create(ctx context.Context, review *entity.Review) error

	// SummaryByArtisan returns the count and rating sum of the reviews attributed to the artisan.
	SummaryByArtisan(ctx context.Context, artisanID string) (entity.RatingSummary, error)
}
