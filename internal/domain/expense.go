package domain

type Expense struct {
	ExpenseID   string  `json:"expense_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
