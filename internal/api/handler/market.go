package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

const scrapeSampleSize = 5

// CompetitorSyncer é a parte do agendador usada pela coleta manual
type CompetitorSyncer interface {
	SyncCompetitors(ctx context.Context) ([]domain.CompetitorRecord, error)
}

// GetMarketAnalysis compara o produto (padrão P001) com os preços coletados dos concorrentes
func GetMarketAnalysis(insighter insighting.Insighter, competitors repository.CompetitorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := r.URL.Query().Get("product_id")
		if productID == "" {
			productID = defaultProductID
		}

		records, err := competitors.List()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		insights, err := insighter.MarketInsights(r.Context(), productID, records)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, insights)
	}
}

// ScrapeCompetitors executa a coleta na hora e devolve as primeiras linhas gravadas
func ScrapeCompetitors(syncer CompetitorSyncer, competitors repository.CompetitorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Competitor sync service not available", nil)
			return
		}

		records, err := syncer.SyncCompetitors(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		sample := records
		if len(sample) > scrapeSampleSize {
			sample = sample[:scrapeSampleSize]
		}
		if sample == nil {
			sample = []domain.CompetitorRecord{}
		}

		writeJSON(w, r, http.StatusOK, domain.ScrapeResult{
			Status:  "ok",
			SavedTo: competitors.Path(),
			Sample:  sample,
		})
	}
}
