package impl

import (
	"context"
	"log/slog"
	"time"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID string) ([]*entity.Product, error) {
	products, err := srv.favoriteRepo.ListProducts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return products, nil
}

// AddFavorite saves the product for the user. Saving twice returns the first favorite.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, productID string) (*entity.Favorite, error) {
	if productID == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"productId": "is required"})
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", productID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	favorite, err := srv.favoriteRepo.Add(ctx, &entity.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: srv.now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add favorite")
	}

	return favorite, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, productID string) error {
	if err := srv.favoriteRepo.Remove(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
