package postgres

import (
	"context"
	"time"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// Upsert inserts the user or merges its non-empty fields into the stored row in one statement.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := time.Now()
	userM := fromUserDomain(user)
	userM.CreatedAt = now
	userM.UpdatedAt = now

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(mergeColumns(user)),
	}).Create(userM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// Read back from the primary so replicas lagging behind cannot hide the write.
	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), user.ID)
}

func (repo *userRepository) findByID(db *gorm.DB, id string) (*entity.User, error) {
	var userM model.UserModel
	if err := db.Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// mergeColumns lists the columns an upsert overwrites: the non-empty fields plus updated_at.
func mergeColumns(user *entity.User) []string {
	columns := make([]string, 0, 8)
	if user.Email != "" {
		columns = append(columns, "email")
	}
	if user.FirstName != "" {
		columns = append(columns, "first_name")
	}
	if user.LastName != "" {
		columns = append(columns, "last_name")
	}
	if user.ProfileImageURL != "" {
		columns = append(columns, "profile_image_url")
	}
	if user.Bio != "" {
		columns = append(columns, "bio")
	}
	if user.Location != "" {
		columns = append(columns, "location")
	}
	if user.IsVerified {
		columns = append(columns, "is_verified")
	}

	return append(columns, "updated_at")
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		Bio:             data.Bio,
		Location:        data.Location,
		IsVerified:      data.IsVerified,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		Bio:             data.Bio,
		Location:        data.Location,
		IsVerified:      data.IsVerified,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
