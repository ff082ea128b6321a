package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const restockTriggerAction = "Email draft ready for procurement."

type Service struct {
	analyzer  analyzing.Analyzer
	snapshot  *domain.Snapshot
	generator Generator
	timeout   time.Duration
}

// NewService cria o serviço de insights com o gerador escolhido na inicialização
func NewService(analyzer analyzing.Analyzer, snapshot *domain.Snapshot, generator Generator, timeout time.Duration) Insighter {
	return &Service{
		analyzer:  analyzer,
		snapshot:  snapshot,
		generator: generator,
		timeout:   timeout,
	}
}

func (s *Service) narrate(ctx context.Context, role string, data any) domain.Narration {
	return Narrate(ctx, s.generator, s.timeout, role, data)
}

func (s *Service) FinancialInsights(ctx context.Context) (*domain.FinancialInsights, error) {
	summary, err := s.analyzer.FinancialSummary()
	if err != nil {
		return nil, err
	}

	return &domain.FinancialInsights{
		Summary:   summary,
		CASummary: s.narrate(ctx, RoleCASummary, summary),
	}, nil
}

func (s *Service) TaxAdvice(ctx context.Context) *domain.TaxAdvice {
	expenses := s.snapshot.Expenses()

	descriptions := make([]string, 0, len(expenses))
	for _, e := range expenses {
		descriptions = append(descriptions, e.Description)
	}
	total := utils.Money(analyzing.TotalExpenses(expenses))

	advice := s.narrate(ctx, RoleTaxExpert, map[string]any{
		"operating_expenses_list":  descriptions,
		"total_operating_expenses": total,
	})

	return &domain.TaxAdvice{
		Expenses:      expenses,
		TotalExpenses: total,
		Advice:        advice,
	}
}

// InventoryAutomation só pede o rascunho de e-mail quando algum produto foi sinalizado
func (s *Service) InventoryAutomation(ctx context.Context) *domain.InventoryAutomation {
	report := s.analyzer.RestockReport()
	automation := &domain.InventoryAutomation{RestockReport: report}

	if report.Status != domain.RestockStatusLowStock {
		return automation
	}

	log.ForContext(ctx).Infof("restock: %d products flagged, drafting email", len(report.Items))

	draft := s.narrate(ctx, RoleInventoryManager, map[string]any{"low_stock_report": report.Items})
	automation.EmailDraft = &draft
	if draft.Available {
		automation.TriggerAction = restockTriggerAction
	}

	return automation
}

func (s *Service) GrowthInsights(ctx context.Context) (*domain.GrowthInsights, error) {
	report, err := s.analyzer.GrowthReport()
	if err != nil {
		return nil, err
	}

	insights := &domain.GrowthInsights{GrowthReport: report}
	if report.Status != domain.GrowthStatusOK {
		return insights, nil
	}

	advice := s.narrate(ctx, RoleGrowthAnalyst, report.Metrics)
	insights.StrategyAdvice = &advice

	return insights, nil
}

func (s *Service) MarketInsights(ctx context.Context, productID string, competitors []domain.CompetitorRecord) (*domain.MarketInsights, error) {
	analysis, err := s.analyzer.MarketAnalysis(productID, competitors)
	if err != nil {
		return nil, err
	}

	role := RolePricingStrategist(productID, analysis.ClosestCompetitor.ProductName)

	return &domain.MarketInsights{
		Analysis:      analysis,
		PricingAdvice: s.narrate(ctx, role, analysis),
	}, nil
}
