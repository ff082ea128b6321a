package analyzing

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// MockTaxRate é a alíquota fixa usada para estimar o imposto a pagar
const MockTaxRate = 0.15

func (s *Service) FinancialSummary() (*domain.FinancialSummary, error) {
	return Summarize(s.table, s.snapshot.Expenses())
}

// Summarize agrega a tabela derivada e as despesas. Tabela vazia é ErrNoData,
// diferente de um resultado com receita zero.
func Summarize(table *PurchaseTable, expenses []domain.Expense) (*domain.FinancialSummary, error) {
	if table.Empty() {
		return nil, NewAnalysisError(ErrNoData, "")
	}

	revenue := decimal.Zero
	cogs := decimal.Zero
	for _, row := range table.rows {
		revenue = revenue.Add(row.Revenue)
		cogs = cogs.Add(row.CostOfGoods)
	}

	grossProfit := revenue.Sub(cogs)
	operatingExpenses := TotalExpenses(expenses)
	netProfit := grossProfit.Sub(operatingExpenses)

	taxPayable := decimal.Zero
	if netProfit.IsPositive() {
		taxPayable = netProfit.Mul(decimal.NewFromFloat(MockTaxRate))
	}

	return &domain.FinancialSummary{
		TotalRevenue:        utils.Money(revenue),
		TotalCOGS:           utils.Money(cogs),
		GrossProfit:         utils.Money(grossProfit),
		OperatingExpenses:   utils.Money(operatingExpenses),
		NetProfit:           utils.Money(netProfit),
		TotalSalesCount:     table.Len(),
		TaxRate:             MockTaxRate,
		EstimatedTaxPayable: utils.Money(taxPayable),
	}, nil
}

func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}
