package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/designing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

type designQuery struct {
	Trend     string `json:"trend" validate:"max=40"`
	StoreType string `json:"store_type" validate:"max=80"`
}

func GetCurrentStoreDesign(designer designing.Designer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := designer.CurrentDesign(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, current)
	}
}

// GetStoreDesignIdea aceita trend (padrão Modern) e store_type (padrão fashion boutique)
func GetStoreDesignIdea(designer designing.Designer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := designQuery{
			Trend:     r.URL.Query().Get("trend"),
			StoreType: r.URL.Query().Get("store_type"),
		}

		if err := utils.Validate.Struct(params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid design parameters", utils.ProcessValidationErrors(err))
			return
		}

		idea, err := designer.DesignIdea(r.Context(), params.Trend, params.StoreType)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, idea)
	}
}

func GetWebsiteProblems(monitor monitoring.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health, err := monitor.WebsiteProblems(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, health)
	}
}
