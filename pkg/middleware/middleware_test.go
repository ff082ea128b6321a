package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		expectedAllow string
	}{
		{name: "allowed origin", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, expectedAllow: "http://localhost:3000"},
		{name: "unknown origin", allowed: []string{"http://localhost:3000"}, origin: "http://evil.test", method: http.MethodGet, expectedAllow: ""},
		{name: "wildcard", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodGet, expectedAllow: "http://any.test"},
		{name: "preflight", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodOptions, expectedAllow: "http://any.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/inventory", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	chain := alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(panicking)
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/growth", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
}
