package domain

// FinancialSummary é o demonstrativo de resultado (P&L) calculado sobre o snapshot
type FinancialSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalCOGS           float64 `json:"total_cogs"`
	GrossProfit         float64 `json:"gross_profit"`
	OperatingExpenses   float64 `json:"operating_expenses"`
	NetProfit           float64 `json:"net_profit"`
	TotalSalesCount     int     `json:"total_sales_count"`
	TaxRate             float64 `json:"tax_rate_mock"`
	EstimatedTaxPayable float64 `json:"estimated_tax_payable"`
}

type FinancialInsights struct {
	Summary   *FinancialSummary `json:"raw_financial_data"`
	CASummary Narration         `json:"ca_summary_report"`
}

type TaxAdvice struct {
	Expenses      []Expense `json:"expense_list"`
	TotalExpenses float64   `json:"total_operating_expenses"`
	Advice        Narration `json:"tax_deduction_advice"`
}
