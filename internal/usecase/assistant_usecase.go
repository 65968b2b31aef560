package usecase

import "context"

// PricingInput describes the product to price.
type PricingInput struct {
	Title       string
	Description string
	Category    string
	Materials   string
}

// PriceRange is an inclusive price band.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PricingSuggestion is the assistant's pricing advice.
type PricingSuggestion struct {
	SuggestedPrice float64    `json:"suggestedPrice"`
	PriceRange     PriceRange `json:"priceRange"`
	Reasoning      string     `json:"reasoning"`
	MarketFactors  []string   `json:"marketFactors"`
}

// MarketingInput describes the product to write copy for.
type MarketingInput struct {
	Title       string
	Description string
	Category    string
}

// MarketingContent is generated listing copy.
type MarketingContent struct {
	SEOTitle             string `json:"seoTitle"`
	SocialCaption        string `json:"socialCaption"`
	StoryVersion         string `json:"storyVersion"`
	MarketingDescription string `json:"marketingDescription"`
}

// StoryInput carries the artisan's current story.
type StoryInput struct {
	Bio        string
	CraftType  string
	Experience string
}

// StoryEnhancement is a rewritten artisan story.
type StoryEnhancement struct {
	EnhancedBio         string   `json:"enhancedBio"`
	CraftStory          string   `json:"craftStory"`
	InspirationSources  []string `json:"inspirationSources"`
	UniqueSellingPoints []string `json:"uniqueSellingPoints"`
}

// ImageAnalysis is the assistant's feedback on a product photo.
type ImageAnalysis struct {
	Suggestions       []string `json:"suggestions"`
	DetectedMaterials []string `json:"detectedMaterials"`
	StyleAnalysis     string   `json:"styleAnalysis"`
	ImprovementTips   []string `json:"improvementTips"`
}

// AssistantUsecase wraps the hosted model with marketplace prompts.
// The requester's profile supplies the artisan name and location.
type AssistantUsecase interface {
	GeneratePricingSuggestion(ctx context.Context, input *PricingInput) (*PricingSuggestion, error)
	GenerateMarketingContent(ctx context.Context, requesterID string, input *MarketingInput) (*MarketingContent, error)
	EnhanceArtisanStory(ctx context.Context, requesterID string, input *StoryInput) (*StoryEnhancement, error)
	AnalyzeProductImage(ctx context.Context, image []byte) (*ImageAnalysis, error)
}
