package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

// ChatCompleter é o subconjunto do cliente go-openai usado pelo gerador e pelo classificador
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

func NewClient(cfg *config.Config) ChatCompleter {
	return goopenai.NewClient(cfg.Insight.OpenAIAPIKey)
}
