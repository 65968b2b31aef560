package handler

import (
	"log/slog"
	"net/http"

	"artisanconnect/internal/delivery/api/response"
	"artisanconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CategoryHandler serves product categories
type CategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateCategoryRequest represents the request body for a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// ListCategories returns every category
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// CreateCategory adds a category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}
