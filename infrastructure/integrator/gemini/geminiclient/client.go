package geminiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     config.Insight
}

// NewClient cria o cliente REST da API generativa do Gemini
func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg.Insight,
	}
}
