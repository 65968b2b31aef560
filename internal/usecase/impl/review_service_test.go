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

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *serviceFixture) {
	t.Helper()

	fixture := newServiceFixture(t)

	return NewReviewService(fixture.reviews, fixture.products, fixture.inquiries, newTestLogger()), fixture
}

func TestReviewService_CreateReview(t *testing.T) {
	srv, _ := createTestReviewService(t)
	ctx := context.Background()

	review, err := srv.CreateReview(ctx, "buyer-1", &usecase.CreateReviewInput{ProductID: "1", Rating: 5, Comment: " Lovely "})
	require.NoError(t, err)
	assert.Equal(t, "artisan-1", review.ArtisanID)
	assert.Equal(t, "Lovely", review.Comment)

	_, err = srv.CreateReview(ctx, "buyer-1", &usecase.CreateReviewInput{ProductID: "1", Rating: 4})
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))

	reviews, err := srv.ListReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestReviewService_CreateReview_Errors(t *testing.T) {
	srv, _ := createTestReviewService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		buyerID string
		input   usecase.CreateReviewInput
		want    error
	}{
		{"anonymous", "", usecase.CreateReviewInput{ProductID: "1", Rating: 3}, domainerrors.ErrUnauthenticated},
		{"rating too low", "buyer-1", usecase.CreateReviewInput{ProductID: "1", Rating: 0}, domainerrors.ErrValidationFailed},
		{"rating too high", "buyer-1", usecase.CreateReviewInput{ProductID: "1", Rating: 6}, domainerrors.ErrValidationFailed},
		{"missing product", "buyer-1", usecase.CreateReviewInput{ProductID: "missing", Rating: 3}, domainerrors.ErrProductNotFound},
		{"own product", "artisan-1", usecase.CreateReviewInput{ProductID: "1", Rating: 5}, domainerrors.ErrSelfReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := srv.CreateReview(ctx, tt.buyerID, &input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReviewService_GetArtisanStats(t *testing.T) {
	srv, _ := createTestReviewService(t)
	ctx := context.Background()

	empty, err := srv.GetArtisanStats(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), empty.TotalProducts)
	assert.Zero(t, empty.TotalReviews)
	assert.Zero(t, empty.AverageRating)

	_, err = srv.CreateReview(ctx, "buyer-1", &usecase.CreateReviewInput{ProductID: "1", Rating: 5})
	require.NoError(t, err)
	_, err = srv.CreateReview(ctx, "buyer-2", &usecase.CreateReviewInput{ProductID: "1", Rating: 4})
	require.NoError(t, err)
	_, err = srv.CreateReview(ctx, "buyer-3", &usecase.CreateReviewInput{ProductID: "1", Rating: 4})
	require.NoError(t, err)

	stats, err := srv.GetArtisanStats(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalReviews)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 1e-9)
	assert.Zero(t, stats.TotalInquiries)
}
