// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/fixtures"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: categoryRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a category with a unique name.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"name": "is required"})
	}

	category := &entity.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   srv.now().UTC(),
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			return nil, errors.Wrapf(domainerrors.ErrCategoryAlreadyExists, "category %q", name)
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created",
		slog.String("category_id", category.ID),
		slog.String("name", category.Name),
	)

	return category, nil
}

// SeedDefaultCategories creates the default catalog on an empty database.
func (srv *catalogService) SeedDefaultCategories(ctx context.Context) (int, error) {
	created, err := fixtures.SeedCategories(ctx, srv.categoryRepo, srv.log(ctx))
	if err != nil {
		return 0, errors.Wrap(err, "failed to seed categories")
	}

	return created, nil
}
