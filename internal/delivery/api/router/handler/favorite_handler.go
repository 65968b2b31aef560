package handler

import (
	"log/slog"
	"net/http"

	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/response"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the requester's saved products
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for saving a product
type AddFavoriteRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
}

// ListFavorites returns the saved products
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	products, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// AddFavorite saves a product. Saving twice returns the existing favorite.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorite)
}

// RemoveFavorite un-saves a product
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Favorite removed successfully")
}
