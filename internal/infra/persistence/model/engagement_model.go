package model

import "time"

// InquiryModel mirrors the 'inquiries' table.
type InquiryModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	ProductID string `gorm:"type:varchar(64);not null;index"`
	ArtisanID string `gorm:"type:varchar(128);not null;index"`
	BuyerID   string `gorm:"type:varchar(128);not null;index"`
	Subject   string `gorm:"type:varchar(255)"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}

// FavoriteModel mirrors the 'favorites' table. (user_id, product_id) is unique.
type FavoriteModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	UserID    string `gorm:"type:varchar(128);not null;uniqueIndex:idx_favorites_user_product"`
	ProductID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ReviewModel mirrors the 'reviews' table. A buyer reviews a product at most once.
type ReviewModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	ProductID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_reviews_buyer_product;index"`
	BuyerID   string `gorm:"type:varchar(128);not null;uniqueIndex:idx_reviews_buyer_product"`
	ArtisanID string `gorm:"type:varchar(128);not null;index"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All returns every persistence model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&CategoryModel{},
		&ProductModel{},
		&InquiryModel{},
		&FavoriteModel{},
		&ReviewModel{},
	}
}
