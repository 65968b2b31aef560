package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"artisanconnect/config"
	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/domain/service"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxProductImages = 10
	defaultUploadPublicPath = "/uploads"
	// priceScale matches the numeric(12,2) price column.
	priceScale = 2
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	qrCode       service.QRCodeService
	maxImages    int
	uploadPrefix string
	logger       *slog.Logger
	now          func() time.Time
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	imageStore service.ImageStore,
	qrCode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	maxImages := defaultMaxProductImages
	publicPath := defaultUploadPublicPath
	if cfg != nil && cfg.Upload != nil {
		if cfg.Upload.MaxFiles > 0 {
			maxImages = cfg.Upload.MaxFiles
		}
		if cfg.Upload.PublicPath != "" {
			publicPath = cfg.Upload.PublicPath
		}
	}

	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
		qrCode:       qrCode,
		maxImages:    maxImages,
		uploadPrefix: "/" + strings.Trim(publicPath, "/") + "/",
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the active listings matching the filter, newest first.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	filter.CategoryID = strings.TrimSpace(filter.CategoryID)
	filter.ArtisanID = strings.TrimSpace(filter.ArtisanID)
	filter.Search = strings.TrimSpace(filter.Search)

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a product by ID, including deactivated ones.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return srv.loadProduct(ctx, id)
}

// GetProductQRCode renders the share code of an existing product.
func (srv *productService) GetProductQRCode(ctx context.Context, id string) ([]byte, error) {
	product, err := srv.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductQR(product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// CreateProduct stores the uploaded images and lists the product for the artisan.
func (srv *productService) CreateProduct(ctx context.Context, artisanID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if artisanID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	fields := map[string]string{}
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		fields["title"] = "is required"
	}
	if description == "" {
		fields["description"] = "is required"
	}
	if msg := priceProblem(input.Price); msg != "" {
		fields["price"] = msg
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		fields["categoryId"] = "is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	if err := srv.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	if len(input.Images) > srv.maxImages {
		return nil, errors.Wrapf(domainerrors.ErrTooManyFiles, "%d images uploaded, at most %d allowed", len(input.Images), srv.maxImages)
	}

	images := make([]string, 0, len(input.Images))
	for _, file := range input.Images {
		stored, err := srv.imageStore.Save(ctx, file.FieldName, file.FileName, file.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to store image %q", file.FileName)
		}
		images = append(images, stored.URL)
	}

	now := srv.now().UTC()
	product := &entity.Product{
		ID:                 uuid.NewString(),
		Title:              title,
		Description:        description,
		Price:              input.Price,
		CategoryID:         input.CategoryID,
		ArtisanID:          artisanID,
		Images:             images,
		Materials:          input.Materials,
		Dimensions:         input.Dimensions,
		CareInstructions:   input.CareInstructions,
		IsActive:           true,
		AIEnhanced:         input.AIEnhanced,
		AIPricingSuggested: input.AIPricingSuggested,
		SEOTitle:           input.SEOTitle,
		MarketingCaption:   input.MarketingCaption,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product listed",
		slog.String("product_id", product.ID),
		slog.String("artisan_id", artisanID),
		slog.Int("images", len(images)),
	)

	return product, nil
}

// UpdateProduct applies a partial update on behalf of the owning artisan.
func (srv *productService) UpdateProduct(ctx context.Context, requesterID, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	if _, err := requireOwner(ctx, srv.loadProduct, productOwner, id, requesterID, domainerrors.ErrProductOwnershipViolation); err != nil {
		return nil, err
	}

	if patch == nil {
		patch = &entity.ProductPatch{}
	}

	fields := map[string]string{}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		fields["title"] = "must not be empty"
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		fields["description"] = "must not be empty"
	}
	if patch.Price != nil {
		if msg := priceProblem(*patch.Price); msg != "" {
			fields["price"] = msg
		}
	}
	if patch.Images != nil {
		if msg := srv.imagesProblem(patch.Images); msg != "" {
			fields["images"] = msg
		}
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	if patch.CategoryID != nil {
		if err := srv.ensureCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := srv.productRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", id))

	return updated, nil
}

// DeleteProduct hides the product from the marketplace. The row is kept.
func (srv *productService) DeleteProduct(ctx context.Context, requesterID, id string) error {
	if _, err := requireOwner(ctx, srv.loadProduct, productOwner, id, requesterID, domainerrors.ErrProductOwnershipViolation); err != nil {
		return err
	}

	if err := srv.productRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deactivated", slog.String("product_id", id))

	return nil
}

func priceProblem(price decimal.Decimal) string {
	switch {
	case !price.IsPositive():
		return "must be a positive number"
	case !price.Equal(price.Round(priceScale)):
		return fmt.Sprintf("must have at most %d decimal places", priceScale)
	default:
		return ""
	}
}

// imagesProblem accepts stored upload paths and absolute http(s) URLs.
func (srv *productService) imagesProblem(images []string) string {
	if len(images) > srv.maxImages {
		return fmt.Sprintf("must contain at most %d images", srv.maxImages)
	}

	for _, raw := range images {
		if !srv.validImageURL(raw) {
			return "must contain valid image URLs"
		}
	}

	return ""
}

func (srv *productService) validImageURL(raw string) bool {
	if strings.HasPrefix(raw, srv.uploadPrefix) {
		name := strings.TrimPrefix(raw, srv.uploadPrefix)

		return name != "" && !strings.ContainsAny(name, "/\\?#") && !strings.Contains(name, "..")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (srv *productService) loadProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ensureCategory(ctx context.Context, categoryID string) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.NewValidationError(map[string]string{"categoryId": "unknown category"})
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func productOwner(p *entity.Product) string {
	return p.ArtisanID
}
