package domain

type Product struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	StockLevel int     `json:"stock_level"`
	Price      float64 `json:"price"`
	Cost       float64 `json:"cost"`
}
