package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"

	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/domain/service"
	"artisanconnect/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	minSuggestedPrice = 10
	minRangePrice     = 5
	fallbackArtisan   = "Artisan"
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	generator service.ContentGenerator
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(
	generator service.ContentGenerator,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	return &assistantService{
		generator: generator,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePricingSuggestion asks the model for a price and clamps implausibly low answers.
func (srv *assistantService) GeneratePricingSuggestion(ctx context.Context, input *usecase.PricingInput) (*usecase.PricingSuggestion, error) {
	prompt := service.Prompt{
		System: pricingSystemPrompt,
		User:   pricingPrompt(input.Title, input.Description, input.Category, input.Materials),
	}

	var suggestion usecase.PricingSuggestion
	if err := srv.generateJSON(ctx, prompt, &suggestion); err != nil {
		return nil, srv.failed(ctx, "failed to generate pricing suggestion", err)
	}

	suggestion.SuggestedPrice = math.Max(minSuggestedPrice, suggestion.SuggestedPrice)
	suggestion.PriceRange.Min = math.Max(minRangePrice, suggestion.PriceRange.Min)

	return &suggestion, nil
}

// GenerateMarketingContent writes listing copy signed with the requester's name.
func (srv *assistantService) GenerateMarketingContent(ctx context.Context, requesterID string, input *usecase.MarketingInput) (*usecase.MarketingContent, error) {
	requester := srv.requester(ctx, requesterID)

	prompt := service.Prompt{
		System: marketingSystemPrompt,
		User:   marketingPrompt(input.Title, input.Description, input.Category, requester.DisplayName(fallbackArtisan)),
	}

	var content usecase.MarketingContent
	if err := srv.generateJSON(ctx, prompt, &content); err != nil {
		return nil, srv.failed(ctx, "failed to generate marketing content", err)
	}

	return &content, nil
}

// EnhanceArtisanStory rewrites the bio using the location stored on the requester's profile.
func (srv *assistantService) EnhanceArtisanStory(ctx context.Context, requesterID string, input *usecase.StoryInput) (*usecase.StoryEnhancement, error) {
	requester := srv.requester(ctx, requesterID)

	location := ""
	if requester != nil {
		location = requester.Location
	}

	prompt := service.Prompt{
		System: storySystemPrompt,
		User:   storyPrompt(input.Bio, input.CraftType, location, input.Experience),
	}

	var story usecase.StoryEnhancement
	if err := srv.generateJSON(ctx, prompt, &story); err != nil {
		return nil, srv.failed(ctx, "failed to enhance artisan story", err)
	}

	return &story, nil
}

// AnalyzeProductImage sends the photo to a vision-capable model.
func (srv *assistantService) AnalyzeProductImage(ctx context.Context, image []byte) (*usecase.ImageAnalysis, error) {
	if len(image) == 0 {
		return nil, domainerrors.NewValidationError(map[string]string{"image": "is required"})
	}

	detected := mimetype.Detect(image)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedMediaType, "detected %s", detected.String())
	}

	prompt := service.Prompt{
		User:      imageAnalysisPrompt,
		Image:     image,
		ImageMIME: detected.String(),
	}

	var analysis usecase.ImageAnalysis
	if err := srv.generateJSON(ctx, prompt, &analysis); err != nil {
		return nil, srv.failed(ctx, "failed to analyze product image", err)
	}

	return &analysis, nil
}

func (srv *assistantService) generateJSON(ctx context.Context, prompt service.Prompt, out any) error {
	raw, err := srv.generator.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return errors.New("empty response from model")
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return errors.Wrap(err, "invalid JSON from model")
	}

	return nil
}

func (srv *assistantService) failed(ctx context.Context, action string, err error) error {
	srv.log(ctx).Error("AI assistant request failed",
		slog.String("action", action),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrAIGenerationFailed, action+": "+err.Error())
}

// requester returns the caller's profile, or nil when it cannot be loaded.
func (srv *assistantService) requester(ctx context.Context, userID string) *entity.User {
	if userID == "" {
		return nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Failed to load requester profile",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return user
}

// stripCodeFence removes the ```json ... ``` wrapper some models put around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
