package domain

type QuantityPoint struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

type InventoryTrend struct {
	ProductID string          `json:"product_id"`
	Days      int             `json:"days"`
	Series    []QuantityPoint `json:"series"`
}
