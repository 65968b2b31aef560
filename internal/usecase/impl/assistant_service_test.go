package impl

import (
	"context"
	"testing"

	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/service"
	mockSvc "artisanconnect/internal/mocks/service"
	"artisanconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAssistantService(t *testing.T) (usecase.AssistantUsecase, *serviceFixture, *mockSvc.MockContentGenerator) {
	t.Helper()

	fixture := newServiceFixture(t)
	generator := mockSvc.NewMockContentGenerator(t)

	return NewAssistantService(generator, fixture.users, newTestLogger()), fixture, generator
}

func TestAssistantService_GeneratePricingSuggestion_ClampsLowPrices(t *testing.T) {
	srv, _, generator := createTestAssistantService(t)

	generator.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("```json\n{\"suggestedPrice\": 3, \"priceRange\": {\"min\": 1, \"max\": 20}, \"reasoning\": \"small\", \"marketFactors\": [\"clay\"]}\n```", nil).
		Once()

	suggestion, err := srv.GeneratePricingSuggestion(context.Background(), &usecase.PricingInput{Title: "Mug", Materials: "clay"})
	require.NoError(t, err)

	assert.Equal(t, 10.0, suggestion.SuggestedPrice)
	assert.Equal(t, 5.0, suggestion.PriceRange.Min)
	assert.Equal(t, 20.0, suggestion.PriceRange.Max)
	assert.Equal(t, []string{"clay"}, suggestion.MarketFactors)
}

func TestAssistantService_GeneratePricingSuggestion_KeepsPlausiblePrices(t *testing.T) {
	srv, _, generator := createTestAssistantService(t)

	generator.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(p service.Prompt) bool {
		return p.System == pricingSystemPrompt && p.Image == nil
	})).
		Return(`{"suggestedPrice": 85, "priceRange": {"min": 70, "max": 110}, "reasoning": "hand thrown"}`, nil).
		Once()

	suggestion, err := srv.GeneratePricingSuggestion(context.Background(), &usecase.PricingInput{Title: "Vase"})
	require.NoError(t, err)
	assert.Equal(t, 85.0, suggestion.SuggestedPrice)
	assert.Equal(t, 70.0, suggestion.PriceRange.Min)
}

func TestAssistantService_GenerationFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{name: "provider error", err: errors.New("quota exceeded")},
		{name: "empty response", raw: "   "},
		{name: "not json", raw: "I think about forty dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, generator := createTestAssistantService(t)
			generator.EXPECT().Generate(mock.Anything, mock.Anything).Return(tt.raw, tt.err).Once()

			_, err := srv.GeneratePricingSuggestion(context.Background(), &usecase.PricingInput{Title: "Bowl"})
			assert.True(t, errors.Is(err, domainerrors.ErrAIGenerationFailed), "got %v", err)
		})
	}
}

func TestAssistantService_GenerateMarketingContent_UsesRequesterName(t *testing.T) {
	srv, fixture, generator := createTestAssistantService(t)
	ctx := context.Background()

	_, err := fixture.users.Upsert(ctx, &entity.User{ID: "artisan-1", FirstName: "Ana", LastName: "Ruiz"})
	require.NoError(t, err)

	var prompt service.Prompt
	generator.EXPECT().Generate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p service.Prompt) { prompt = p }).
		Return(`{"seoTitle": "Hand Thrown Mug", "socialCaption": "#handmade"}`, nil).
		Once()

	content, err := srv.GenerateMarketingContent(ctx, "artisan-1", &usecase.MarketingInput{Title: "Mug"})
	require.NoError(t, err)

	assert.Equal(t, "Hand Thrown Mug", content.SEOTitle)
	assert.Equal(t, marketingSystemPrompt, prompt.System)
	assert.Contains(t, prompt.User, "Artisan: Ana Ruiz")
}

func TestAssistantService_GenerateMarketingContent_FallsBackForUnknownRequester(t *testing.T) {
	srv, _, generator := createTestAssistantService(t)

	var prompt service.Prompt
	generator.EXPECT().Generate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p service.Prompt) { prompt = p }).
		Return(`{}`, nil).
		Once()

	_, err := srv.GenerateMarketingContent(context.Background(), "ghost", &usecase.MarketingInput{Title: "Mug"})
	require.NoError(t, err)
	assert.Contains(t, prompt.User, "Artisan: Artisan")
}

func TestAssistantService_EnhanceArtisanStory_UsesProfileLocation(t *testing.T) {
	srv, fixture, generator := createTestAssistantService(t)
	ctx := context.Background()

	_, err := fixture.users.Upsert(ctx, &entity.User{ID: "artisan-2", Location: "Kyoto"})
	require.NoError(t, err)

	var prompt service.Prompt
	generator.EXPECT().Generate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p service.Prompt) { prompt = p }).
		Return(`{"enhancedBio": "A weaver from Kyoto", "inspirationSources": ["rivers"]}`, nil).
		Once()

	story, err := srv.EnhanceArtisanStory(ctx, "artisan-2", &usecase.StoryInput{Bio: "I weave", CraftType: "textiles"})
	require.NoError(t, err)

	assert.Equal(t, "A weaver from Kyoto", story.EnhancedBio)
	assert.Contains(t, prompt.User, "Location: Kyoto")
}

func TestAssistantService_AnalyzeProductImage(t *testing.T) {
	srv, _, generator := createTestAssistantService(t)
	ctx := context.Background()

	_, err := srv.AnalyzeProductImage(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.AnalyzeProductImage(ctx, []byte("plain text, not a photo"))
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))

	var prompt service.Prompt
	generator.EXPECT().Generate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p service.Prompt) { prompt = p }).
		Return(`{"styleAnalysis": "rustic", "suggestions": ["use daylight"]}`, nil).
		Once()

	analysis, err := srv.AnalyzeProductImage(ctx, pngHeader)
	require.NoError(t, err)

	assert.Equal(t, "rustic", analysis.StyleAnalysis)
	assert.Equal(t, "image/png", prompt.ImageMIME)
	assert.Equal(t, pngHeader, prompt.Image)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
}
