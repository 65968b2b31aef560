package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Images keep their upload order as a JSON array.
type ProductModel struct {
	ID                 string                      `gorm:"type:varchar(64);primaryKey"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Description        string                      `gorm:"type:text;not null"`
	Price              decimal.Decimal             `gorm:"type:numeric(12,2);not null;check:price > 0"`
	CategoryID         string                      `gorm:"type:varchar(64);not null;index"`
	ArtisanID          string                      `gorm:"type:varchar(128);not null;index"`
	Images             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Materials          string                      `gorm:"type:text"`
	Dimensions         string                      `gorm:"type:varchar(255)"`
	CareInstructions   string                      `gorm:"type:text"`
	IsActive           bool                        `gorm:"not null;default:true;index"`
	AIEnhanced         bool                        `gorm:"not null;default:false"`
	AIPricingSuggested bool                        `gorm:"not null;default:false"`
	SEOTitle           string                      `gorm:"type:varchar(255)"`
	MarketingCaption   string                      `gorm:"type:text"`
	CreatedAt          time.Time                   `gorm:"index"`
	UpdatedAt          time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Artisan  *UserModel     `gorm:"foreignKey:ArtisanID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
