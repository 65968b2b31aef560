package postgres

import (
	"context"
	"strings"
	"time"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns active products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ArtisanID != "" {
		query = query.Where("artisan_id = ?", filter.ArtisanID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var rows []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

// FindByID retrieves a product by ID, including inactive ones.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references an unknown category or artisan")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update applies the patch to the stored product and refreshes UpdatedAt.
func (repo *productRepository) Update(ctx context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	product, err := repo.findByID(db, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	product.UpdatedAt = time.Now()

	if err := db.Save(fromProductDomain(product)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("product references an unknown category")
		}
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return product, nil
}

// Deactivate marks the product inactive. The row is kept.
func (repo *productRepository) Deactivate(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountActiveByArtisan returns the number of active products listed by the artisan.
func (repo *productRepository) CountActiveByArtisan(ctx context.Context, artisanID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("artisan_id = ? AND is_active = ?", artisanID, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count artisan products")
	}

	return count, nil
}

func (repo *productRepository) findByID(db *gorm.DB, id string) (*entity.Product, error) {
	var row model.ProductModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&row), nil
}

// escapeLike escapes the LIKE wildcards of a user supplied search term.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]string, 0, len(data.Images))
	images = append(images, data.Images...)

	return &entity.Product{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		Price:              data.Price,
		CategoryID:         data.CategoryID,
		ArtisanID:          data.ArtisanID,
		Images:             images,
		Materials:          data.Materials,
		Dimensions:         data.Dimensions,
		CareInstructions:   data.CareInstructions,
		IsActive:           data.IsActive,
		AIEnhanced:         data.AIEnhanced,
		AIPricingSuggested: data.AIPricingSuggested,
		SEOTitle:           data.SEOTitle,
		MarketingCaption:   data.MarketingCaption,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toProductsDomain(rows []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		Price:              data.Price,
		CategoryID:         data.CategoryID,
		ArtisanID:          data.ArtisanID,
		Images:             datatypes.JSONSlice[string](append([]string{}, data.Images...)),
		Materials:          data.Materials,
		Dimensions:         data.Dimensions,
		CareInstructions:   data.CareInstructions,
		IsActive:           data.IsActive,
		AIEnhanced:         data.AIEnhanced,
		AIPricingSuggested: data.AIPricingSuggested,
		SEOTitle:           data.SEOTitle,
		MarketingCaption:   data.MarketingCaption,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
