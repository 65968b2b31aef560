package entity

import "time"

// InquiryStatus is the lifecycle state of a buyer inquiry.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// IsValid reports whether s is one of the known statuses.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusResponded, InquiryStatusClosed:
		return true
	default:
		return false
	}
}

// Inquiry is a buyer-to-artisan message about a product.
type Inquiry struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	ArtisanID string        `json:"artisanId"`
	BuyerID   string        `json:"buyerId"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
