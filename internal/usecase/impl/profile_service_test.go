package impl

import (
	"context"
	"testing"

	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateThenGet(t *testing.T) {
	fixture := newServiceFixture(t)
	srv := NewProfileService(fixture.users, newTestLogger())
	ctx := context.Background()

	_, err := srv.GetProfile(ctx, "user-1")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	created, err := srv.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{
		Email:     " Potter@Example.com ",
		FirstName: "Maria",
		Location:  "Oaxaca",
	})
	require.NoError(t, err)
	assert.Equal(t, "potter@example.com", created.Email)

	updated, err := srv.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{Bio: "Third-generation potter"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.FirstName)
	assert.Equal(t, "Oaxaca", updated.Location)
	assert.Equal(t, "Third-generation potter", updated.Bio)

	profile, err := srv.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, updated.Bio, profile.Bio)
}

func TestProfileService_UpdateProfile_RequiresUser(t *testing.T) {
	fixture := newServiceFixture(t)
	srv := NewProfileService(fixture.users, newTestLogger())

	_, err := srv.UpdateProfile(context.Background(), "", &usecase.UpdateProfileInput{FirstName: "X"})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
