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
	"artisanconnect/internal/domain/service"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(
	inquiryRepo repository.InquiryRepository,
	productRepo repository.ProductRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListInquiries returns the inquiries addressed to the artisan, newest first.
func (srv *inquiryService) ListInquiries(ctx context.Context, artisanID string) ([]*entity.Inquiry, error) {
	inquiries, err := srv.inquiryRepo.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	return inquiries, nil
}

// CreateInquiry stores a pending inquiry for the product's artisan and announces it.
func (srv *inquiryService) CreateInquiry(ctx context.Context, buyerID string, input *usecase.CreateInquiryInput) (*entity.Inquiry, error) {
	if buyerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	fields := map[string]string{}
	if strings.TrimSpace(input.ProductID) == "" {
		fields["productId"] = "is required"
	}
	if strings.TrimSpace(input.Message) == "" {
		fields["message"] = "is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", input.ProductID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	inquiry := &entity.Inquiry{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		ArtisanID: product.ArtisanID,
		BuyerID:   buyerID,
		Subject:   strings.TrimSpace(input.Subject),
		Message:   input.Message,
		Status:    entity.InquiryStatusPending,
		CreatedAt: srv.now().UTC(),
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to create inquiry")
	}

	srv.publishCreated(ctx, inquiry)

	return inquiry, nil
}

// publishCreated announces the inquiry. Failures are logged and never reach the buyer.
func (srv *inquiryService) publishCreated(ctx context.Context, inquiry *entity.Inquiry) {
	event := &service.InquiryCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		InquiryID: inquiry.ID,
		ProductID: inquiry.ProductID,
		ArtisanID: inquiry.ArtisanID,
		BuyerID:   inquiry.BuyerID,
		Subject:   inquiry.Subject,
		CreatedAt: inquiry.CreatedAt,
	}

	if err := srv.publisher.PublishInquiryCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish inquiry event",
			slog.String("inquiry_id", inquiry.ID),
			slog.Any("error", err),
		)
	}
}

// UpdateInquiryStatus lets the addressed artisan move an inquiry between statuses.
func (srv *inquiryService) UpdateInquiryStatus(ctx context.Context, requesterID, id string, status entity.InquiryStatus) (*entity.Inquiry, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"status": "must be one of pending, responded, closed"})
	}

	if _, err := requireOwner(ctx, srv.loadInquiry, inquiryOwner, id, requesterID, domainerrors.ErrInquiryOwnershipViolation); err != nil {
		return nil, err
	}

	updated, err := srv.inquiryRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrInquiryNotFound, "inquiry %s", id)
		}

		return nil, errors.Wrap(err, "failed to update inquiry status")
	}

	srv.log(ctx).Info("Inquiry status updated",
		slog.String("inquiry_id", id),
		slog.String("status", string(status)),
	)

	return updated, nil
}

func (srv *inquiryService) loadInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	inquiry, err := srv.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrInquiryNotFound, "inquiry %s", id)
		}

		return nil, errors.Wrap(err, "failed to find inquiry")
	}

	return inquiry, nil
}

func inquiryOwner(i *entity.Inquiry) string {
	return i.ArtisanID
}
