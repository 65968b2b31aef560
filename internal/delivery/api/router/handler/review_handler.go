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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews and artisan statistics
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for a review.
// ArtisanID is accepted for compatibility and ignored; the product decides it.
type CreateReviewRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
	ArtisanID string `json:"artisanId"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"max=5000"`
}

// ListReviews returns a product's reviews, newest first
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// CreateReview records the requester's review of a product
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// GetArtisanStats returns an artisan's listing statistics
func (h *ReviewHandler) GetArtisanStats(c echo.Context) error {
	stats, err := h.reviewUC.GetArtisanStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
