package insighting

import (
	"context"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// Generator é o provedor de texto (Gemini, OpenAI ou demo). Recebe o papel que o
// modelo deve assumir e os dados já calculados; nunca calcula números.
type Generator interface {
	Generate(ctx context.Context, role string, data any) (string, error)
}

// Insighter combina as análises numéricas com a narração do provedor
type Insighter interface {
	// FinancialInsights devolve o P&L e o resumo de contador
	FinancialInsights(ctx context.Context) (*domain.FinancialInsights, error)

	// TaxAdvice devolve as despesas e dicas de dedução
	TaxAdvice(ctx context.Context) *domain.TaxAdvice

	// InventoryAutomation devolve o relatório de reposição e, se houver itens, o rascunho do e-mail
	InventoryAutomation(ctx context.Context) *domain.InventoryAutomation

	// GrowthInsights devolve a análise de crescimento e a estratégia sugerida
	GrowthInsights(ctx context.Context) (*domain.GrowthInsights, error)

	// MarketInsights devolve a análise de preço do produto e a recomendação narrada
	MarketInsights(ctx context.Context, productID string, competitors []domain.CompetitorRecord) (*domain.MarketInsights, error)
}
