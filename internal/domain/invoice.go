package domain

import "time"

type InvoiceCustomer struct {
	Name       string  `json:"name"`
	CustomerID string  `json:"customer_id"`
	Email      *string `json:"email,omitempty"`
}

type InvoiceItem struct {
	ProductName string  `json:"product_name"`
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type Invoice struct {
	InvoiceID    string          `json:"invoice_id"`
	Date         time.Time       `json:"date"`
	Customer     InvoiceCustomer `json:"customer"`
	Items        []InvoiceItem   `json:"items"`
	InvoiceTotal float64         `json:"invoice_total"`
	Note         string          `json:"note"`
}
