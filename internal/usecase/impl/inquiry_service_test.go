package impl

import (
	"context"
	"testing"

	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/service"
	mockSvc "artisanconnect/internal/mocks/service"
	"artisanconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInquiryService(t *testing.T) (usecase.InquiryUsecase, *serviceFixture, *mockSvc.MockEventPublisher) {
	t.Helper()

	fixture := newServiceFixture(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return NewInquiryService(fixture.inquiries, fixture.products, publisher, newTestLogger()), fixture, publisher
}

func TestInquiryService_CreateInquiry_DerivesArtisanAndPublishes(t *testing.T) {
	srv, _, publisher := createTestInquiryService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	var published *service.InquiryCreatedEvent
	publisher.EXPECT().
		PublishInquiryCreated(mock.Anything, mock.AnythingOfType("*service.InquiryCreatedEvent")).
		Run(func(_ context.Context, event *service.InquiryCreatedEvent) { published = event }).
		Return(nil).
		Once()

	inquiry, err := srv.CreateInquiry(ctx, "buyer-1", &usecase.CreateInquiryInput{
		ProductID: "3",
		Subject:   " Custom size ",
		Message:   "Could you make a longer one?",
	})
	require.NoError(t, err)

	assert.Equal(t, "artisan-3", inquiry.ArtisanID)
	assert.Equal(t, "buyer-1", inquiry.BuyerID)
	assert.Equal(t, "Custom size", inquiry.Subject)
	assert.Equal(t, entity.InquiryStatusPending, inquiry.Status)

	require.NotNil(t, published)
	assert.Equal(t, inquiry.ID, published.InquiryID)
	assert.Equal(t, "artisan-3", published.ArtisanID)
	assert.Equal(t, "req-42", published.RequestID)

	inquiries, err := srv.ListInquiries(ctx, "artisan-3")
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Equal(t, inquiry.ID, inquiries[0].ID)
}

func TestInquiryService_CreateInquiry_PublishFailureIsNotReturned(t *testing.T) {
	srv, _, publisher := createTestInquiryService(t)
	ctx := context.Background()

	publisher.EXPECT().PublishInquiryCreated(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	inquiry, err := srv.CreateInquiry(ctx, "buyer-1", &usecase.CreateInquiryInput{ProductID: "1", Message: "Hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
}

func TestInquiryService_CreateInquiry_Errors(t *testing.T) {
	srv, _, _ := createTestInquiryService(t)
	ctx := context.Background()

	_, err := srv.CreateInquiry(ctx, "", &usecase.CreateInquiryInput{ProductID: "1", Message: "Hello"})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = srv.CreateInquiry(ctx, "buyer-1", &usecase.CreateInquiryInput{ProductID: "1", Message: "   "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.CreateInquiry(ctx, "buyer-1", &usecase.CreateInquiryInput{ProductID: "missing", Message: "Hello"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestInquiryService_UpdateInquiryStatus(t *testing.T) {
	srv, _, publisher := createTestInquiryService(t)
	ctx := context.Background()

	publisher.EXPECT().PublishInquiryCreated(mock.Anything, mock.Anything).Return(nil).Once()

	inquiry, err := srv.CreateInquiry(ctx, "buyer-1", &usecase.CreateInquiryInput{ProductID: "2", Message: "Is it silk?"})
	require.NoError(t, err)

	updated, err := srv.UpdateInquiryStatus(ctx, "artisan-2", inquiry.ID, entity.InquiryStatusResponded)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusResponded, updated.Status)

	_, err = srv.UpdateInquiryStatus(ctx, "buyer-1", inquiry.ID, entity.InquiryStatusClosed)
	assert.True(t, errors.Is(err, domainerrors.ErrInquiryOwnershipViolation))

	_, err = srv.UpdateInquiryStatus(ctx, "artisan-2", inquiry.ID, entity.InquiryStatus("archived"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.UpdateInquiryStatus(ctx, "artisan-2", "missing", entity.InquiryStatusClosed)
	assert.True(t, errors.Is(err, domainerrors.ErrInquiryNotFound))
}
