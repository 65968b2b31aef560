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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategoryDomain(row))
	}

	return categories, nil
}

// FindByID retrieves a category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var row model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&row), nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	row := &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategoryAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = row.CreatedAt

	return nil
}

// Count returns the number of stored categories.
func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}

	return count, nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
