package postgres

import (
	"context"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

// ListByArtisan returns the inquiries addressed to the artisan, newest first.
func (repo *inquiryRepository) ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Inquiry, error) {
	var rows []*model.InquiryModel
	err := repo.db.WithContext(ctx).
		Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(rows))
	for _, row := range rows {
		inquiries = append(inquiries, toInquiryDomain(row))
	}

	return inquiries, nil
}

// FindByID retrieves an inquiry by ID.
func (repo *inquiryRepository) FindByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// Create persists a new inquiry.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	row := &model.InquiryModel{
		ID:        inquiry.ID,
		ProductID: inquiry.ProductID,
		ArtisanID: inquiry.ArtisanID,
		BuyerID:   inquiry.BuyerID,
		Subject:   inquiry.Subject,
		Message:   inquiry.Message,
		Status:    string(inquiry.Status),
		CreatedAt: inquiry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("inquiry references an unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	return nil
}

// UpdateStatus sets the status of an inquiry and returns the updated row.
func (repo *inquiryRepository) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) (*entity.Inquiry, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	result := db.Model(&model.InquiryModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inquiry status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrInquiryNotFound
	}

	return repo.findByID(db, id)
}

// CountByArtisan returns the number of inquiries addressed to the artisan.
func (repo *inquiryRepository) CountByArtisan(ctx context.Context, artisanID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("artisan_id = ?", artisanID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count inquiries")
	}

	return count, nil
}

func (repo *inquiryRepository) findByID(db *gorm.DB, id string) (*entity.Inquiry, error) {
	var row model.InquiryModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inquiry by id")
	}

	return toInquiryDomain(&row), nil
}

func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	return &entity.Inquiry{
		ID:        data.ID,
		ProductID: data.ProductID,
		ArtisanID: data.ArtisanID,
		BuyerID:   data.BuyerID,
		Subject:   data.Subject,
		Message:   data.Message,
		Status:    entity.InquiryStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}
