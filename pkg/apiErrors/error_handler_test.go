package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "product not found", code: ErrProductNotFound, expectedStatus: http.StatusNotFound},
		{name: "invalid request", code: ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
		{name: "data unavailable", code: ErrDataUnavailable, expectedStatus: http.StatusInternalServerError},
		{name: "route not found", code: ErrRouteNotFound, expectedStatus: http.StatusNotFound},
		{name: "method not allowed", code: ErrMethodNotAllowed, expectedStatus: http.StatusMethodNotAllowed},
		{name: "unknown code", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "boom", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("disk full"), ErrStorageOperation)
	assert.Equal(t, ErrStorageOperation, apiErr.Code)
	assert.Equal(t, "disk full", apiErr.Message)

	apiErr = FromError(nil, ErrStorageOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
