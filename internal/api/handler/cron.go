package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCompetitorSync = "competitor-sync"
	CronJobTypeAll            = "all"
)

// CronJob é o contrato mínimo de um agendador executável manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CompetitorSync CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := paramFromContext(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not provided", nil)
			return
		}

		switch cronType {
		case CronJobTypeCompetitorSync, CronJobTypeAll:
			if services.CompetitorSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Competitor sync service not available", nil)
				return
			}
			services.CompetitorSync.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: competitor-sync, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("cron: manual run triggered")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CompetitorSync != nil {
			status[CronJobTypeCompetitorSync] = services.CompetitorSync.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
