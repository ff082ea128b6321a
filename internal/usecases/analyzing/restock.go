package analyzing

import (
	"math"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	restockWindowDays = 30
	leadTimeDays      = 14
	bufferDays        = 7
	safetyFactor      = 1.5
	minimumThreshold  = 50
)

const healthyStockSummary = "All stock levels are healthy."

func (s *Service) RestockReport() *domain.RestockReport {
	return AnalyzeRestock(s.snapshot.Products(), s.table)
}

// AnalyzeRestock sinaliza os produtos com estoque igual ou abaixo do limite dinâmico.
// A janela de 30 dias é ancorada na data mais recente da tabela, nunca no relógio.
func AnalyzeRestock(products []domain.Product, table *PurchaseTable) *domain.RestockReport {
	recent := recentQuantities(table)

	items := make([]domain.RestockItem, 0)
	for _, p := range products {
		item, flagged := evaluateProduct(p, recent[p.ProductID])
		if flagged {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return &domain.RestockReport{
			Status:  domain.RestockStatusOK,
			Summary: healthyStockSummary,
			Items:   items,
		}
	}

	return &domain.RestockReport{
		Status: domain.RestockStatusLowStock,
		Items:  items,
	}
}

// recentQuantities soma as quantidades por produto com data > max_date - 30 dias
func recentQuantities(table *PurchaseTable) map[string]int {
	quantities := make(map[string]int)
	if table.Empty() {
		return quantities
	}

	cutoff := table.MaxDate().AddDate(0, 0, -restockWindowDays)
	for _, row := range table.rows {
		if row.Date.After(cutoff) {
			quantities[row.ProductID] += row.Quantity
		}
	}

	return quantities
}

func evaluateProduct(p domain.Product, recentQty int) (domain.RestockItem, bool) {
	avgDailySales := float64(recentQty) / restockWindowDays

	threshold := max(minimumThreshold, int(math.Floor(avgDailySales*leadTimeDays*safetyFactor)))
	targetStock := int(math.Floor(avgDailySales * (leadTimeDays + bufferDays) * safetyFactor))
	recommendation := max(0, targetStock-p.StockLevel)

	name := p.Name
	if name == "" {
		name = "Unknown Product"
	}

	item := domain.RestockItem{
		ProductID:         p.ProductID,
		Name:              name,
		CurrentStock:      p.StockLevel,
		SalesInLast30Days: recentQty,
		AvgDailySales:     utils.Round(avgDailySales, 3),
		DynamicThreshold:  threshold,
		RecommendationQty: recommendation,
	}

	return item, p.StockLevel <= threshold
}
