// Package ai wires hosted language models behind service.ContentGenerator.
package ai

import (
	"context"
	"log/slog"
	"time"

	"artisanconnect/config"
	"artisanconnect/internal/domain/constants"
	"artisanconnect/internal/domain/lifecycle"
	"artisanconnect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeneratorParams holds dependencies for the content generator, injected by Fx
type GeneratorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewContentGenerator selects the provider named by ai.provider.
func NewContentGenerator(params GeneratorParams) (service.ContentGenerator, error) {
	cfg := params.Config.AI
	if cfg == nil {
		cfg = &config.AIConfig{Provider: constants.AIProviderMock}
	}

	var generator service.ContentGenerator

	switch cfg.Provider {
	case constants.AIProviderOpenAI:
		openAI, err := NewOpenAIGenerator(cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		generator = openAI

	case constants.AIProviderGemini:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		gemini, closeClient, err := NewGeminiGenerator(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return errors.WithStack(closeClient())
			},
		})
		generator = gemini

	case constants.AIProviderMock, "":
		generator = NewMockGenerator()

	default:
		return nil, errors.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	params.Logger.Info("Content generator initialized",
		slog.String("provider", cfg.Provider),
		slog.Duration("timeout", cfg.Timeout),
	)

	return WithTimeout(generator, cfg.Timeout), nil
}

type timeoutGenerator struct {
	next    service.ContentGenerator
	timeout time.Duration
}

// WithTimeout bounds every Generate call; a non-positive timeout returns next unchanged.
func WithTimeout(next service.ContentGenerator, timeout time.Duration) service.ContentGenerator {
	if timeout <= 0 {
		return next
	}

	return &timeoutGenerator{next: next, timeout: timeout}
}

func (g *timeoutGenerator) Generate(ctx context.Context, prompt service.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.next.Generate(ctx, prompt)
}

// Module provides the AI FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewContentGenerator),
)
