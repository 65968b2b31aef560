package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	inquiryRepo repository.InquiryRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	inquiryRepo repository.InquiryRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		inquiryRepo: inquiryRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *reviewService) ListReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// CreateReview records a buyer's rating and attributes it to the product's artisan.
func (srv *reviewService) CreateReview(ctx context.Context, buyerID string, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if buyerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	fields := map[string]string{}
	if strings.TrimSpace(input.ProductID) == "" {
		fields["productId"] = "is required"
	}
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		fields["rating"] = fmt.Sprintf("must be between %d and %d", entity.MinRating, entity.MaxRating)
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", input.ProductID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.ArtisanID == buyerID {
		return nil, errors.Wrapf(domainerrors.ErrSelfReview, "artisan %s reviewing product %s", buyerID, product.ID)
	}

	review := &entity.Review{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		BuyerID:   buyerID,
		ArtisanID: product.ArtisanID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: srv.now().UTC(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewAlreadyExists) {
			return nil, errors.Wrapf(domainerrors.ErrReviewAlreadyExists, "buyer %s, product %s", buyerID, product.ID)
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Review created",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// GetArtisanStats aggregates active listings, inquiries and ratings for an artisan.
func (srv *reviewService) GetArtisanStats(ctx context.Context, artisanID string) (*entity.ArtisanStats, error) {
	products, err := srv.productRepo.CountActiveByArtisan(ctx, artisanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	inquiries, err := srv.inquiryRepo.CountByArtisan(ctx, artisanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count inquiries")
	}

	summary, err := srv.reviewRepo.SummaryByArtisan(ctx, artisanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return &entity.ArtisanStats{
		TotalProducts:  products,
		TotalInquiries: inquiries,
		AverageRating:  summary.Average(),
		TotalReviews:   summary.Count,
	}, nil
}
