package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	defaultProductID = "P001"
	defaultTrendDays = 30
)

// GetOverview devolve as métricas de crescimento e a série diária; com dados insuficientes as métricas vão nulas
func GetOverview(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := analyzer.GrowthReport()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		overview := domain.Overview{
			Metrics:         report.Metrics,
			DailySalesChart: report.Daily,
		}
		if overview.DailySalesChart == nil {
			overview.DailySalesChart = []domain.DailyRevenue{}
		}

		writeJSON(w, r, http.StatusOK, overview)
	}
}

func GetGrowthInsights(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights, err := insighter.GrowthInsights(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, insights)
	}
}

func GetFinancials(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := analyzer.FinancialSummary()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, summary)
	}
}

func GetFinancialInsights(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights, err := insighter.FinancialInsights(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, insights)
	}
}

func GetTaxAdvice(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, insighter.TaxAdvice(r.Context()))
	}
}

func GetInventoryAutomation(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, insighter.InventoryAutomation(r.Context()))
	}
}

type trendsQuery struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Days      int    `json:"days" validate:"min=1,max=365"`
}

// GetInventoryTrends aceita product_id (padrão P001) e days (padrão 30)
func GetInventoryTrends(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params := trendsQuery{ProductID: query.Get("product_id"), Days: defaultTrendDays}
		if params.ProductID == "" {
			params.ProductID = defaultProductID
		}

		if raw := query.Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be an integer", map[string]string{"days": raw})
				return
			}
			params.Days = parsed
		}

		if err := utils.Validate.Struct(params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, analyzing.ErrInvalidWindow.Error(), utils.ProcessValidationErrors(err))
			return
		}

		trend, err := analyzer.InventoryTrend(params.ProductID, params.Days)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, trend)
	}
}

func GetInvoice(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID := paramFromContext(r, "purchase_id")
		if purchaseID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "purchase_id is required", nil)
			return
		}

		invoice, err := analyzer.Invoice(purchaseID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, invoice)
	}
}
