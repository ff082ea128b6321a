package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func ListCustomers(snapshot *domain.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, snapshot.Customers())
	}
}

func ListInventory(snapshot *domain.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, snapshot.Products())
	}
}

func ListExpenses(snapshot *domain.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, snapshot.Expenses())
	}
}

func ListPurchases(snapshot *domain.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, snapshot.Purchases())
	}
}

// ListCustomerPurchases devolve lista vazia para cliente sem compras
func ListCustomerPurchases(snapshot *domain.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := paramFromContext(r, "customer_id")
		writeJSON(w, r, http.StatusOK, snapshot.PurchasesByCustomer(customerID))
	}
}

func ListCompetitors(competitors repository.CompetitorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := competitors.List()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, records)
	}
}
