package ai

import (
	"context"
	"encoding/base64"
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel   = "gpt-4o"
	imageCompletionLimit = 2048
)

type openAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a chat completion generator that requests JSON objects.
func NewOpenAIGenerator(cfg config.ProviderConfig) (service.ContentGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt service.Prompt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: buildOpenAIMessages(prompt),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if len(prompt.Image) > 0 {
		req.MaxCompletionTokens = imageCompletionLimit
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "openai chat completion failed")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("no content received from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildOpenAIMessages(prompt service.Prompt) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}

	if len(prompt.Image) == 0 {
		return append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt.User,
		})
	}

	mime := prompt.ImageMIME
	if mime == "" {
		mime = "image/jpeg"
	}

	return append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt.User},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(prompt.Image),
				},
			},
		},
	})
}
