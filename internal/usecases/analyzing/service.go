// Package analyzing concentra as análises numéricas sobre o snapshot de dados:
// resultado financeiro, reposição de estoque, crescimento, precificação, tendências e faturas.
package analyzing

import (
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// Analyzer define as análises disponíveis sobre o snapshot carregado
type Analyzer interface {
	// FinancialSummary calcula o demonstrativo de resultado
	FinancialSummary() (*domain.FinancialSummary, error)

	// RestockReport avalia o estoque de cada produto contra o limite dinâmico
	RestockReport() *domain.RestockReport

	// GrowthReport agrega a receita diária e classifica anomalias
	GrowthReport() (*domain.GrowthReport, error)

	// MarketAnalysis compara um produto com o concorrente de preço mais próximo
	MarketAnalysis(productID string, competitors []domain.CompetitorRecord) (*domain.MarketAnalysis, error)

	// InventoryTrend devolve a série diária de quantidade vendida de um produto
	InventoryTrend(productID string, days int) (*domain.InventoryTrend, error)

	// Invoice monta a fatura de uma compra
	Invoice(purchaseID string) (*domain.Invoice, error)
}

type Service struct {
	snapshot *domain.Snapshot
	table    *PurchaseTable
}

// NewService constrói a tabela derivada de compras uma única vez
func NewService(snapshot *domain.Snapshot) *Service {
	return &Service{
		snapshot: snapshot,
		table:    NewPurchaseTable(snapshot.Purchases(), snapshot.ProductCosts()),
	}
}
