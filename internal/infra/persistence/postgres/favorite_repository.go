package postgres

import (
	"context"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ListProducts joins favorites to products and returns the active ones, newest favorite first.
func (repo *favoriteRepository) ListProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ? AND products.is_active = ?", userID, true).
		Order("favorites.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite products")
	}

	return toProductsDomain(rows), nil
}

// Add stores the favorite, or returns the existing one for the same (user, product) pair.
func (repo *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	row := &model.FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("favorite references an unknown product")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	var stored model.FavoriteModel
	err = db.Where("user_id = ? AND product_id = ?", favorite.UserID, favorite.ProductID).First(&stored).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite")
	}

	return &entity.Favorite{
		ID:        stored.ID,
		UserID:    stored.UserID,
		ProductID: stored.ProductID,
		CreatedAt: stored.CreatedAt,
	}, nil
}

// Remove deletes every favorite for the (user, product) pair.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, productID string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return nil
}
