package usecase

import (
	"context"

	"artisanconnect/internal/domain/entity"
)

// CreateInquiryInput defines the data a buyer sends with an inquiry.
// The artisan is always derived from the product.
type CreateInquiryInput struct {
	ProductID string
	Subject   string
	Message   string
}

// CreateReviewInput defines the data a buyer sends with a review.
type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// InquiryUsecase handles buyer-to-artisan messages.
type InquiryUsecase interface {
	ListInquiries(ctx context.Context, artisanID string) ([]*entity.Inquiry, error)
	CreateInquiry(ctx context.Context, buyerID string, input *CreateInquiryInput) (*entity.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, requesterID, id string, status entity.InquiryStatus) (*entity.Inquiry, error)
}

// FavoriteUsecase manages saved products.
type FavoriteUsecase interface {
	ListFavorites(ctx context.Context, userID string) ([]*entity.Product, error)
	AddFavorite(ctx context.Context, userID, productID string) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID string) error
}

// ReviewUsecase manages product reviews and the artisan statistics derived from them.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, productID string) ([]*entity.Review, error)
	CreateReview(ctx context.Context, buyerID string, input *CreateReviewInput) (*entity.Review, error)
	GetArtisanStats(ctx context.Context, artisanID string) (*entity.ArtisanStats, error)
}
