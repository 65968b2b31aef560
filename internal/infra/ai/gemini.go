package ai

import (
	"context"
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
// The returned closer releases the underlying client.
func NewGeminiGenerator(ctx context.Context, cfg config.ProviderConfig) (service.ContentGenerator, func() error, error) {
	if cfg.APIKey == "" {
		return nil, nil, errors.New("gemini api key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiGenerator{client: client, model: model}, client.Close, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt service.Prompt) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	if prompt.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(prompt.System))
	}

	parts := []genai.Part{genai.Text(prompt.User)}
	if len(prompt.Image) > 0 {
		mime := prompt.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, genai.Blob{MIMEType: mime, Data: prompt.Image})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content failed")
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("no content received from Gemini")
	}

	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		if sb.Len() > 0 {
			break
		}
	}

	return sb.String()
}
