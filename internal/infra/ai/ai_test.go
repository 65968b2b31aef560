package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artisanconnect/config"
	"artisanconnect/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOpenAIGenerator_RequestsJSONObject(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	generator, err := NewOpenAIGenerator(config.ProviderConfig{APIKey: "test-key", Model: "gpt-test", BaseURL: server.URL})
	require.NoError(t, err)

	out, err := generator.Generate(context.Background(), service.Prompt{System: "be helpful", User: "price this"})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "gpt-test", captured["model"])
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAIGenerator_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[]}`)
	}))
	defer server.Close()

	generator, err := NewOpenAIGenerator(config.ProviderConfig{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), service.Prompt{User: "x"})
	assert.Error(t, err)
}

func TestNewOpenAIGenerator_RequiresKey(t *testing.T) {
	_, err := NewOpenAIGenerator(config.ProviderConfig{})
	assert.Error(t, err)
}

func TestBuildOpenAIMessages_ImageUsesDataURL(t *testing.T) {
	messages := buildOpenAIMessages(service.Prompt{User: "look", Image: []byte{1, 2, 3}, ImageMIME: "image/png"})

	require.Len(t, messages, 1)
	require.Len(t, messages[0].MultiContent, 2)
	assert.Equal(t, "data:image/png;base64,AQID", messages[0].MultiContent[1].ImageURL.URL)
}

func TestMockGenerator_AnswersByPromptKind(t *testing.T) {
	generator := NewMockGenerator()
	ctx := context.Background()

	tests := []struct {
		name   string
		prompt service.Prompt
		key    string
	}{
		{"pricing", service.Prompt{User: "Analyze this product and suggest pricing"}, "suggestedPrice"},
		{"marketing", service.Prompt{User: "Create marketing content"}, "seoTitle"},
		{"story", service.Prompt{User: "Enhance this artisan's story"}, "enhancedBio"},
		{"image", service.Prompt{User: "Analyze", Image: []byte{0xff}}, "detectedMaterials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := generator.Generate(ctx, tt.prompt)
			require.NoError(t, err)
			assert.Contains(t, out, tt.key)
		})
	}
}

type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, _ service.Prompt) (string, error) {
	<-ctx.Done()

	return "", ctx.Err()
}

func TestWithTimeout_CancelsSlowProviders(t *testing.T) {
	generator := WithTimeout(blockingGenerator{}, 10*time.Millisecond)

	_, err := generator.Generate(context.Background(), service.Prompt{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, blockingGenerator{}, WithTimeout(blockingGenerator{}, 0))
}

func TestNewContentGenerator_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	generator, err := NewContentGenerator(GeneratorParams{Lc: lc, Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	out, err := generator.Generate(context.Background(), service.Prompt{User: "marketing"})
	require.NoError(t, err)
	assert.Contains(t, out, "seoTitle")

	_, err = NewContentGenerator(GeneratorParams{
		Lc:     lc,
		Config: &config.Config{AI: &config.AIConfig{Provider: "openai"}},
		Logger: logger,
	})
	assert.Error(t, err)

	_, err = NewContentGenerator(GeneratorParams{
		Lc:     lc,
		Config: &config.Config{AI: &config.AIConfig{Provider: "llama"}},
		Logger: logger,
	})
	assert.Error(t, err)
}

func TestResponseText(t *testing.T) {
	assert.Empty(t, responseText(nil))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	assert.Equal(t, `{"a":1}`, responseText(resp))
}
