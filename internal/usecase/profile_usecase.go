package usecase

import (
	"context"

	"artisanconnect/internal/domain/entity"
)

// UpdateProfileInput defines the profile fields a user may change. Empty fields are kept.
type UpdateProfileInput struct {
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	Bio             string
	Location        string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)
}
