package entity

import "time"

// Favorite marks a product as saved by a user. At most one per (UserID, ProductID).
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
