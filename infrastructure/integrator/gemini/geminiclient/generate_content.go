package geminiclient

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrEmptyResponse = errors.New("gemini returned no candidates")

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float32 `json:"temperature,omitempty"`
}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			MaxOutputTokens: c.config.MaxTokens,
			Temperature:     c.config.Temperature,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode gemini request")
	}

	data, err := utils.PostJSON(ctx, c.httpClient, endpoint, body)
	if err != nil {
		var apiErr apiError
		if data != nil && json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini %s: %s", apiErr.Error.Status, apiErr.Error.Message)
		}
		return "", errors.Wrap(err, "gemini request failed")
	}

	var response GenerateContentResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", errors.Wrap(err, "failed to decode gemini response")
	}

	return response.Text()
}

// Text concatena as partes do primeiro candidato
func (r GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}

func (c *GeminiClient) endpoint() (string, error) {
	endpoint, err := url.Parse(c.config.GeminiBaseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid gemini base url")
	}
	endpoint.Path = path.Join(endpoint.Path, "models", c.config.GeminiModel+":generateContent")

	query := endpoint.Query()
	query.Set("key", c.config.GeminiAPIKey)
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}
