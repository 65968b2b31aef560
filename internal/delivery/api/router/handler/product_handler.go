package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/response"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"
	"artisanconnect/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const productImagesField = "images"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product listing handlers
type ProductHandler struct {
	productUC   usecase.ProductUsecase
	maxFileSize int64
	maxFiles    int
	logger      *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) (*ProductHandler, error) {
	h := &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}

	if upload := params.Config.Upload; upload != nil {
		if upload.MaxFileSize != "" {
			size, err := util.ParseByteSize(upload.MaxFileSize)
			if err != nil {
				return nil, errors.Wrap(err, "invalid upload.maxFileSize")
			}
			h.maxFileSize = size
		}
		h.maxFiles = upload.MaxFiles
	}

	return h, nil
}

// CreateProductRequest is the multipart form of a new listing
type CreateProductRequest struct {
	Title              string `form:"title" validate:"notblank,max=200"`
	Description        string `form:"description" validate:"notblank"`
	Price              string `form:"price" validate:"required,positive_decimal"`
	CategoryID         string `form:"categoryId" validate:"notblank"`
	Materials          string `form:"materials"`
	Dimensions         string `form:"dimensions"`
	CareInstructions   string `form:"careInstructions"`
	AIEnhanced         bool   `form:"aiEnhanced"`
	AIPricingSuggested bool   `form:"aiPricingSuggested"`
	SEOTitle           string `form:"seoTitle" validate:"max=200"`
	MarketingCaption   string `form:"marketingCaption"`
}

// UpdateProductRequest carries the fields to change. Absent fields are kept.
type UpdateProductRequest struct {
	Title              *string          `json:"title" validate:"omitempty,notblank,max=200"`
	Description        *string          `json:"description" validate:"omitempty,notblank"`
	Price              *decimal.Decimal `json:"price"`
	CategoryID         *string          `json:"categoryId" validate:"omitempty,notblank"`
	Images             []string         `json:"images"`
	Materials          *string          `json:"materials"`
	Dimensions         *string          `json:"dimensions"`
	CareInstructions   *string          `json:"careInstructions"`
	AIEnhanced         *bool            `json:"aiEnhanced"`
	AIPricingSuggested *bool            `json:"aiPricingSuggested"`
	SEOTitle           *string          `json:"seoTitle" validate:"omitempty,max=200"`
	MarketingCaption   *string          `json:"marketingCaption"`
}

// ListProducts handles the marketplace listing with optional filters
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := entity.ProductFilter{
		CategoryID: strings.TrimSpace(c.QueryParam("categoryId")),
		ArtisanID:  strings.TrimSpace(c.QueryParam("artisanId")),
		Search:     strings.TrimSpace(c.QueryParam("search")),
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles fetching one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductQRCode renders the product's share code as PNG
func (h *ProductHandler) GetProductQRCode(c echo.Context) error {
	png, err := h.productUC.GetProductQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateProduct handles a multipart listing with up to maxFiles images
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(map[string]string{"price": "must be a positive number"}))
	}

	images, err := h.readImages(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, &usecase.CreateProductInput{
		Title:              req.Title,
		Description:        req.Description,
		Price:              price,
		CategoryID:         req.CategoryID,
		Materials:          req.Materials,
		Dimensions:         req.Dimensions,
		CareInstructions:   req.CareInstructions,
		AIEnhanced:         req.AIEnhanced,
		AIPricingSuggested: req.AIPricingSuggested,
		SEOTitle:           req.SEOTitle,
		MarketingCaption:   req.MarketingCaption,
		Images:             images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct handles a partial update by the owning artisan
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, c.Param("id"), &entity.ProductPatch{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		CategoryID:         req.CategoryID,
		Images:             req.Images,
		Materials:          req.Materials,
		Dimensions:         req.Dimensions,
		CareInstructions:   req.CareInstructions,
		AIEnhanced:         req.AIEnhanced,
		AIPricingSuggested: req.AIPricingSuggested,
		SEOTitle:           req.SEOTitle,
		MarketingCaption:   req.MarketingCaption,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct hides a listing from the marketplace
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

func (h *ProductHandler) readImages(c echo.Context) ([]usecase.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// A urlencoded body carries no files.
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid multipart body")
	}

	headers := form.File[productImagesField]
	if h.maxFiles > 0 && len(headers) > h.maxFiles {
		return nil, errors.Wrapf(domainerrors.ErrTooManyFiles, "%d images uploaded, at most %d allowed", len(headers), h.maxFiles)
	}

	images := make([]usecase.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh, h.maxFileSize)
		if err != nil {
			return nil, err
		}
		file.FieldName = productImagesField
		images = append(images, file)
	}

	return images, nil
}
