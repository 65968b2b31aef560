package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

// ErrInquiryNotFound is returned when no inquiry matches the given ID.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository defines persistence operations for buyer inquiries.
type InquiryRepository interface {
	// ListByArtisan returns the inquiries addressed to the artisan, newest first.
	ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Inquiry, error)

	// FindByID retrieves an inquiry by ID.
	FindByID(ctx context.Context, id string) (*entity.Inquiry, error)

	// Create persists a new inquiry.
	Create(ctx context.Context, inquiry *entity.Inquiry) error

	// UpdateStatus sets the status of an inquiry and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) (*entity.Inquiry, error)

	// CountByArtisan returns the number of inquiries addressed to the artisan.
	CountByArtisan(ctx context.Context, artisanID string) (int64, error)
}
