package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func HealthcheckHandler(snapshot *domain.Snapshot) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":         "ok",
			"data_available": snapshot.Available(),
			"time":           time.Now().UTC(),
		})
	})
}
