package entity

import "time"

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a buyer's rating of a product, attributed to the product's artisan.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	BuyerID   string    `json:"buyerId"`
	ArtisanID string    `json:"artisanId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArtisanStats aggregates an artisan's listing activity.
type ArtisanStats struct {
	TotalProducts  int64   `json:"totalProducts"`
	TotalInquiries int64   `json:"totalInquiries"`
	AverageRating  float64 `json:"averageRating"`
	TotalReviews   int64   `json:"totalReviews"`
}

// RatingSummary is the raw review aggregate for an artisan.
type RatingSummary struct {
	Count int64
	Sum   int64
}

// Average returns the mean rating, or 0 when there are no reviews.
func (s RatingSummary) Average() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.Sum) / float64(s.Count)
}
