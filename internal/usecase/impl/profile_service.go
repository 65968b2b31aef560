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
	"artisanconnect/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// GetProfile returns the user behind the session.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile merges the non-empty fields into the profile, creating it when missing.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	now := srv.now().UTC()
	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		ID:              userID,
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		ProfileImageURL: strings.TrimSpace(input.ProfileImageURL),
		Bio:             input.Bio,
		Location:        strings.TrimSpace(input.Location),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Profile updated", slog.String("user_id", userID))

	return user, nil
}
