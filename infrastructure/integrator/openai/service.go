package openai

import (
	"context"
	"errors"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/prompt"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

var ErrEmptyCompletion = errors.New("openai returned no choices")

type OpenAIGenerator struct {
	Client      ChatCompleter
	Model       string
	MaxTokens   int
	Temperature float32
}

func New(cfg *config.Config, client ChatCompleter) *OpenAIGenerator {
	return &OpenAIGenerator{
		Client:      client,
		Model:       cfg.Insight.OpenAIModel,
		MaxTokens:   cfg.Insight.MaxTokens,
		Temperature: cfg.Insight.Temperature,
	}
}

// Generate usa o papel como mensagem de sistema e os dados como mensagem do usuário
func (g *OpenAIGenerator) Generate(ctx context.Context, role string, data any) (string, error) {
	message, err := prompt.UserMessage(data)
	if err != nil {
		return "", err
	}

	text, err := complete(ctx, g.Client, goopenai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: role},
			{Role: goopenai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   g.MaxTokens,
		Temperature: g.Temperature,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"provider": "openai",
			"error":    err.Error(),
		}).Error("insights: generation failed")
		return "", err
	}

	log.ForContext(ctx).WithField("provider", "openai").Debug("insights: generation completed")

	return text, nil
}

func complete(ctx context.Context, client ChatCompleter, request goopenai.ChatCompletionRequest) (string, error) {
	resp, err := client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
