package handler

import (
	"log/slog"
	"net/http"

	"artisanconnect/config"
	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/response"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"
	"artisanconnect/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const analyzeImageField = "image"

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// AssistantHandler exposes the AI content assistant
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	maxFileSize int64
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) (*AssistantHandler, error) {
	h := &AssistantHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}

	if upload := params.Config.Upload; upload != nil && upload.MaxFileSize != "" {
		size, err := util.ParseByteSize(upload.MaxFileSize)
		if err != nil {
			return nil, errors.Wrap(err, "invalid upload.maxFileSize")
		}
		h.maxFileSize = size
	}

	return h, nil
}

// PricingRequest describes the product to price
type PricingRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Category    string `json:"category" validate:"notblank"`
	Materials   string `json:"materials"`
}

// MarketingRequest describes the product to write copy for
type MarketingRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Category    string `json:"category" validate:"notblank"`
}

// StoryRequest carries the artisan's current story
type StoryRequest struct {
	Bio        string `json:"bio" validate:"notblank"`
	CraftType  string `json:"craftType" validate:"notblank"`
	Experience string `json:"experience"`
}

// GeneratePricing suggests a price for a product
func (h *AssistantHandler) GeneratePricing(c echo.Context) error {
	var req PricingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid pricing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	suggestion, err := h.assistantUC.GeneratePricingSuggestion(c.Request().Context(), &usecase.PricingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Materials:   req.Materials,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestion)
}

// GenerateMarketing writes listing copy for a product
func (h *AssistantHandler) GenerateMarketing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req MarketingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid marketing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	content, err := h.assistantUC.GenerateMarketingContent(c.Request().Context(), userID, &usecase.MarketingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, content)
}

// EnhanceStory rewrites the artisan's story
func (h *AssistantHandler) EnhanceStory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req StoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid story input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	story, err := h.assistantUC.EnhanceArtisanStory(c.Request().Context(), userID, &usecase.StoryInput{
		Bio:        req.Bio,
		CraftType:  req.CraftType,
		Experience: req.Experience,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, story)
}

// AnalyzeImage reviews an uploaded product photo
func (h *AssistantHandler) AnalyzeImage(c echo.Context) error {
	fh, err := c.FormFile(analyzeImageField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(map[string]string{
			analyzeImageField: "is required",
		}))
	}

	file, err := readUpload(fh, h.maxFileSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	analysis, err := h.assistantUC.AnalyzeProductImage(c.Request().Context(), file.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis)
}
