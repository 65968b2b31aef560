package ai

import (
	"context"
	"strings"

	"artisanconnect/internal/domain/service"
)

// mockGenerator answers with canned JSON so the assistant works without API keys.
type mockGenerator struct{}

// NewMockGenerator creates a generator that never calls a remote model.
func NewMockGenerator() service.ContentGenerator {
	return mockGenerator{}
}

func (mockGenerator) Generate(_ context.Context, prompt service.Prompt) (string, error) {
	if len(prompt.Image) > 0 {
		return mockImageAnalysis, nil
	}

	text := strings.ToLower(prompt.User)
	switch {
	case strings.Contains(text, "pricing"):
		return mockPricing, nil
	case strings.Contains(text, "marketing"):
		return mockMarketing, nil
	case strings.Contains(text, "story"):
		return mockStory, nil
	default:
		return "{}", nil
	}
}

const mockPricing = "```json\n" + `{
  "suggestedPrice": 85,
  "priceRange": {"min": 65, "max": 110},
  "reasoning": "Handmade items with natural materials command a premium over mass-produced equivalents.",
  "marketFactors": ["material quality", "hours of handwork", "comparable artisan listings"]
}` + "\n```"

const mockMarketing = `{
  "seoTitle": "Handcrafted Artisan Piece | Made to Last",
  "socialCaption": "Made slowly, by hand, for the way you live. #handmade #artisan #shopsmall",
  "storyVersion": "Every piece starts at the workbench with materials chosen one at a time.",
  "marketingDescription": "A one-of-a-kind handmade piece that brings warmth and character to any space."
}`

const mockStory = `{
  "enhancedBio": "A maker who turns traditional techniques into pieces for everyday life.",
  "craftStory": "What began as an evening hobby grew into a studio practice built on patience and repetition.",
  "inspirationSources": ["local landscapes", "family traditions", "natural textures"],
  "uniqueSellingPoints": ["small batches", "sustainably sourced materials", "made to order"]
}`

const mockImageAnalysis = `{
  "suggestions": ["Photograph the piece in natural light", "Add a close-up of the texture"],
  "detectedMaterials": ["ceramic"],
  "styleAnalysis": "Rustic and minimal with an organic silhouette.",
  "improvementTips": ["Use a neutral background", "Show the item in use", "Include a scale reference"]
}`
