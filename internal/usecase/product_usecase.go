package usecase

import (
	"context"

	"artisanconnect/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// UploadedFile is an image received with a product listing.
type UploadedFile struct {
	FieldName string
	FileName  string
	Data      []byte
}

// CreateProductInput defines the data required to list a product.
// ArtisanID, timestamps and IsActive are set by the service.
type CreateProductInput struct {
	Title              string
	Description        string
	Price              decimal.Decimal
	CategoryID         string
	Materials          string
	Dimensions         string
	CareInstructions   string
	AIEnhanced         bool
	AIPricingSuggested bool
	SEOTitle           string
	MarketingCaption   string
	Images             []UploadedFile
}

// ProductUsecase defines the marketplace listing operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	// GetProductQRCode renders a PNG share code for an existing product.
	GetProductQRCode(ctx context.Context, id string) ([]byte, error)
	CreateProduct(ctx context.Context, artisanID string, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, requesterID, id string, patch *entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, requesterID, id string) error
}
