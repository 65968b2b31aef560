package handler

import (
	"log/slog"
	"net/http"

	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/response"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
	Logger    *slog.Logger
}

// InquiryHandler serves buyer inquiries
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
	logger    *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: params.InquiryUC,
		logger:    params.Logger,
	}
}

// CreateInquiryRequest represents the request body for a new inquiry.
// ArtisanID is accepted for compatibility and ignored; the product decides it.
type CreateInquiryRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
	ArtisanID string `json:"artisanId"`
	Subject   string `json:"subject" validate:"max=200"`
	Message   string `json:"message" validate:"notblank,max=5000"`
}

// UpdateInquiryStatusRequest represents the request body for a status change
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending responded closed"`
}

// ListInquiries returns the inquiries addressed to the requester
func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	inquiries, err := h.inquiryUC.ListInquiries(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inquiries)
}

// CreateInquiry sends a message to the product's artisan
func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid inquiry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	inquiry, err := h.inquiryUC.CreateInquiry(c.Request().Context(), userID, &usecase.CreateInquiryInput{
		ProductID: req.ProductID,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inquiry)
}

// UpdateInquiryStatus lets the addressed artisan move an inquiry along
func (h *InquiryHandler) UpdateInquiryStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	inquiry, err := h.inquiryUC.UpdateInquiryStatus(c.Request().Context(), userID, c.Param("id"), entity.InquiryStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inquiry)
}
