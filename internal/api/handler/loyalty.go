package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

func GetCustomerRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetCustomerRanking())
	}
}

func GetLoyaltyReward(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := paramFromContext(r, "customer_id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id is required", nil)
			return
		}

		reward, err := service.RecommendReward(customerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, reward)
	}
}
