package postgres

import (
	"context"
	"strings"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByEmail retrieves the credential registered for the email, case-insensitively.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&credM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return &entity.Credential{
		UserID:       credM.UserID,
		Email:        credM.Email,
		PasswordHash: credM.PasswordHash,
		CreatedAt:    credM.CreatedAt,
	}, nil
}

// Create persists a new credential. A second credential for the same email is rejected.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := &model.CredentialModel{
		Email:        strings.ToLower(credential.Email),
		UserID:       credential.UserID,
		PasswordHash: credential.PasswordHash,
		CreatedAt:    credential.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("credential references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.Email = credM.Email
	credential.CreatedAt = credM.CreatedAt

	return nil
}
