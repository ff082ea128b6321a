package geminiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Insight: config.Insight{
			GeminiAPIKey:  "test-key",
			GeminiModel:   "gemini-test",
			GeminiBaseURL: baseURL + "/v1beta",
			MaxTokens:     256,
			Temperature:   0.5,
		},
	})
}

func TestGenerateContent(t *testing.T) {
	var received GenerateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Revenue "},{"text":"is up."}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).GenerateContent(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "Revenue is up.", text)
	require.Len(t, received.Contents, 1)
	assert.Equal(t, "hello", received.Contents[0].Parts[0].Text)
	require.NotNil(t, received.GenerationConfig)
	assert.Equal(t, 256, received.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, float32(0.5), received.GenerationConfig.Temperature)
}

func TestGenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateContent(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
}

func TestGenerateContent_ServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateContent(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini request failed")
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateContent(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateContent_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL).GenerateContent(ctx, "hello")
	assert.Error(t, err)
}
