// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type CustomerRankingResponse struct {
	TopCustomers []CustomerRankingItem `json:"top_customers"`
}

type CustomerRankingItem struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
	Position   int     `json:"position"`
}

type LoyaltyReward struct {
	CustomerID         string `json:"customer_id"`
	RecommendedProduct string `json:"recommended_product_id,omitempty"`
	Recommendation     string `json:"recommendation"`
}
