package openai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Insight: config.Insight{
			OpenAIAPIKey: "sk-test",
			OpenAIModel:  "gpt-test",
			MaxTokens:    200,
			Temperature:  0.3,
		},
	}
}

func completion(text string) goopenai.ChatCompletionResponse {
	return goopenai.ChatCompletionResponse{
		Choices: []goopenai.ChatCompletionChoice{
			{Message: goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: text}},
		},
	}
}

func TestGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockChatCompleter(ctrl)

	client.EXPECT().
		CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
			assert.Equal(t, "gpt-test", req.Model)
			assert.Equal(t, 200, req.MaxTokens)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, goopenai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Equal(t, "analyst", req.Messages[0].Content)
			assert.Contains(t, req.Messages[1].Content, `"net_profit": 60`)
			return completion("  Profit is healthy.\n"), nil
		})

	text, err := New(testConfig(), client).Generate(context.Background(), "analyst", map[string]int{"net_profit": 60})
	require.NoError(t, err)
	assert.Equal(t, "Profit is healthy.", text)
}

func TestGenerate_NoChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockChatCompleter(ctrl)

	client.EXPECT().
		CreateChatCompletion(gomock.Any(), gomock.Any()).
		Return(goopenai.ChatCompletionResponse{}, nil)

	_, err := New(testConfig(), client).Generate(context.Background(), "analyst", nil)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerate_AgainstHTTPServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","model":"gpt-test","choices":[{"index":0,"message":{"role":"assistant","content":"Hello."},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	clientConfig := goopenai.DefaultConfig("sk-test")
	clientConfig.BaseURL = server.URL + "/v1"

	text, err := New(testConfig(), goopenai.NewClientWithConfig(clientConfig)).Generate(context.Background(), "analyst", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello.", text)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected domain.Intent
	}{
		{name: "financials", label: "financials", expected: domain.IntentFinancials},
		{name: "restock vira inventory", label: "Restock", expected: domain.IntentInventory},
		{name: "reward vira loyalty", label: "reward.", expected: domain.IntentLoyalty},
		{name: "design", label: "design", expected: domain.IntentDesign},
		{name: "website", label: "Website", expected: domain.IntentWebsite},
		{name: "rótulo desconhecido", label: "weather", expected: domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockChatCompleter(ctrl)

			client.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
					assert.Equal(t, "how much money did we make?", req.Messages[1].Content)
					assert.Equal(t, 5, req.MaxTokens)
					assert.Contains(t, req.Messages[0].Content, "design, website")
					return completion(tt.label), nil
				})

			intent, err := NewClassifier(testConfig(), client).Classify(context.Background(), "how much money did we make?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, intent)
		})
	}
}

func TestClassify_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockChatCompleter(ctrl)

	client.EXPECT().
		CreateChatCompletion(gomock.Any(), gomock.Any()).
		Return(goopenai.ChatCompletionResponse{}, errors.New("rate limited"))

	intent, err := NewClassifier(testConfig(), client).Classify(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, domain.IntentUnknown, intent)
}
