package handler

import (
	"log/slog"
	"net/http"

	"artisanconnect/internal/delivery/api/response"
	"artisanconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// UploadHandler streams stored product images
type UploadHandler struct {
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

// ServeImage streams /uploads/:name
func (h *UploadHandler) ServeImage(c echo.Context) error {
	reader, contentType, err := h.imageStore.Open(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400, immutable")

	return c.Stream(http.StatusOK, contentType, reader)
}
