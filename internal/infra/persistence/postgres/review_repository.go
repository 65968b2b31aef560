package postgres

import (
	"context"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// ListByProduct returns the reviews of a product, newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	var rows []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.Review{
			ID:        row.ID,
			ProductID: row.ProductID,
			BuyerID:   row.BuyerID,
			ArtisanID: row.ArtisanID,
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		})
	}

	return reviews, nil
}

// Create persists a new review. The unique (buyer, product) index rejects duplicates.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	row := &model.ReviewModel{
		ID:        review.ID,
		ProductID: review.ProductID,
		BuyerID:   review.BuyerID,
		ArtisanID: review.ArtisanID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("review references an unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// SummaryByArtisan returns the count and rating sum of the reviews attributed to the artisan.
func (repo *reviewRepository) SummaryByArtisan(ctx context.Context, artisanID string) (entity.RatingSummary, error) {
	var summary struct {
		Count int64
		Sum   int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("artisan_id = ?", artisanID).
		Scan(&summary).Error
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize reviews")
	}

	return entity.RatingSummary{Count: summary.Count, Sum: summary.Sum}, nil
}
