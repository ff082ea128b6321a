package domain

type RestockStatus string

const (
	RestockStatusOK       RestockStatus = "OK"
	RestockStatusLowStock RestockStatus = "LOW_STOCK"
)

type RestockItem struct {
	ProductID         string  `json:"product_id"`
	Name              string  `json:"name"`
	CurrentStock      int     `json:"current_stock"`
	SalesInLast30Days int     `json:"sales_in_last_30_days"`
	AvgDailySales     float64 `json:"avg_daily_sales"`
	DynamicThreshold  int     `json:"dynamic_threshold"`
	RecommendationQty int     `json:"recommendation_qty"`
}

// RestockReport diferencia "analisado e saudável" (status OK) de uma lista vazia sem status
type RestockReport struct {
	Status  RestockStatus `json:"status"`
	Summary string        `json:"inventory_summary,omitempty"`
	Items   []RestockItem `json:"low_stock_report"`
}

type InventoryAutomation struct {
	*RestockReport
	EmailDraft    *Narration `json:"restock_email_draft,omitempty"`
	TriggerAction string     `json:"trigger_action,omitempty"`
}
