package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/scheduler"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/assisting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/notifying"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to encode response")
	}
}

// writeServiceError traduz o erro do caso de uso para o código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, details := errorCode(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("http: request failed")
	} else {
		logger.Warn("http: request rejected")
	}

	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, details)
}

func errorCode(err error) (string, any) {
	var analysisErr *analyzing.AnalysisError
	var validationErr *notifying.ValidationError

	switch {
	case errors.As(err, &analysisErr):
		return analysisErr.Code, nil
	case errors.As(err, &validationErr):
		return apiErrors.ErrMissingRequiredData, validationErr.Fields
	case errors.Is(err, repository.ErrDataUnavailable):
		return apiErrors.ErrDataUnavailable, nil
	case errors.Is(err, repository.ErrCompetitorDataNotFound):
		return apiErrors.ErrNoCompetitorData, nil
	case errors.Is(err, ranking.ErrCustomerNotFound):
		return apiErrors.ErrCustomerNotFound, nil
	case errors.Is(err, notifying.ErrOutboxWrite):
		return apiErrors.ErrStorageOperation, nil
	case errors.Is(err, assisting.ErrAssistantUnavailable):
		return apiErrors.ErrAssistantUnavailable, nil
	case errors.Is(err, scheduler.ErrSyncRunning):
		return apiErrors.ErrSyncInProgress, nil
	default:
		return apiErrors.ErrInternalServer, nil
	}
}

// decodeBody lê o corpo JSON da requisição; responde 400 e devolve false em caso de erro
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("http: invalid request body")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid JSON body", nil)
		return false
	}
	return true
}

// RequireData bloqueia as rotas que dependem do snapshot quando o arquivo de dados não foi carregado
func RequireData(snapshot *domain.Snapshot) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !snapshot.Available() {
				apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Data not available", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func paramFromContext(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
