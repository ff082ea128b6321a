package gemini

import (
	"context"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/prompt"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

type GeminiGenerator struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) *GeminiGenerator {
	return &GeminiGenerator{
		Client: client,
	}
}

// Generate envia papel e dados em um único prompt, o Gemini não separa mensagem de sistema
func (g *GeminiGenerator) Generate(ctx context.Context, role string, data any) (string, error) {
	text, err := prompt.Combine(role, data)
	if err != nil {
		return "", err
	}

	response, err := g.Client.GenerateContent(ctx, text)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"provider": "gemini",
			"error":    err.Error(),
		}).Error("insights: generation failed")
		return "", err
	}

	log.ForContext(ctx).WithField("provider", "gemini").Debug("insights: generation completed")

	return response, nil
}
