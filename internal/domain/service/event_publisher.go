package service

import (
	"context"
	"time"
)

// InquiryCreatedEvent is published after a buyer sends an inquiry to an artisan.
type InquiryCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	InquiryID string    `json:"inquiry_id"`
	ProductID string    `json:"product_id"`
	ArtisanID string    `json:"artisan_id"`
	BuyerID   string    `json:"buyer_id"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInquiryCreated publishes an inquiry event for async processing
	PublishInquiryCreated(ctx context.Context, event *InquiryCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
