package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const classifierPrompt = "You classify questions sent to an e-commerce business assistant. " +
	"Answer with exactly one word from this list: financials, restock, reward, design, website, growth, competitor, customer, product, unknown. " +
	"Do not add punctuation or explanations."

// IntentClassifier pede ao modelo um rótulo curto e o converte em domain.Intent
type IntentClassifier struct {
	Client ChatCompleter
	Model  string
}

func NewClassifier(cfg *config.Config, client ChatCompleter) *IntentClassifier {
	return &IntentClassifier{
		Client: client,
		Model:  cfg.Insight.OpenAIModel,
	}
}

func (c *IntentClassifier) Classify(ctx context.Context, query string) (domain.Intent, error) {
	label, err := complete(ctx, c.Client, goopenai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: classifierPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: query},
		},
		MaxTokens:   5,
		Temperature: 0,
	})
	if err != nil {
		return domain.IntentUnknown, err
	}

	return domain.ParseIntent(label), nil
}
