package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a handmade item listed by an artisan. Products are never removed;
// IsActive=false hides them from the marketplace.
type Product struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	CategoryID         string          `json:"categoryId"`
	ArtisanID          string          `json:"artisanId"`
	Images             []string        `json:"images"`
	Materials          string          `json:"materials,omitempty"`
	Dimensions         string          `json:"dimensions,omitempty"`
	CareInstructions   string          `json:"careInstructions,omitempty"`
	IsActive           bool            `json:"isActive"`
	AIEnhanced         bool            `json:"aiEnhanced"`
	AIPricingSuggested bool            `json:"aiPricingSuggested"`
	SEOTitle           string          `json:"seoTitle,omitempty"`
	MarketingCaption   string          `json:"marketingCaption,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ProductFilter narrows a marketplace listing. Empty fields do not filter.
type ProductFilter struct {
	CategoryID string
	ArtisanID  string
	Search     string // Case-insensitive substring of title or description.
}

// ProductPatch holds the mutable product fields. Nil fields are left unchanged.
type ProductPatch struct {
	Title              *string
	Description        *string
	Price              *decimal.Decimal
	CategoryID         *string
	Images             []string
	Materials          *string
	Dimensions         *string
	CareInstructions   *string
	AIEnhanced         *bool
	AIPricingSuggested *bool
	SEOTitle           *string
	MarketingCaption   *string
}

// Apply copies the set fields of p onto product.
func (p *ProductPatch) Apply(product *Product) {
	if p == nil || product == nil {
		return
	}
	if p.Title != nil {
		product.Title = *p.Title
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.Images != nil {
		product.Images = append([]string(nil), p.Images...)
	}
	if p.Materials != nil {
		product.Materials = *p.Materials
	}
	if p.Dimensions != nil {
		product.Dimensions = *p.Dimensions
	}
	if p.CareInstructions != nil {
		product.CareInstructions = *p.CareInstructions
	}
	if p.AIEnhanced != nil {
		product.AIEnhanced = *p.AIEnhanced
	}
	if p.AIPricingSuggested != nil {
		product.AIPricingSuggested = *p.AIPricingSuggested
	}
	if p.SEOTitle != nil {
		product.SEOTitle = *p.SEOTitle
	}
	if p.MarketingCaption != nil {
		product.MarketingCaption = *p.MarketingCaption
	}
}
