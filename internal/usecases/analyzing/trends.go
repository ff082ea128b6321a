package analyzing

import (
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	DefaultTrendDays = 30
	MaxTrendDays     = 365
)

// InventoryTrend preenche com zero os dias sem venda na janela que termina na data mais recente
func (s *Service) InventoryTrend(productID string, days int) (*domain.InventoryTrend, error) {
	if days < 1 || days > MaxTrendDays {
		return nil, NewAnalysisError(ErrInvalidWindow, "")
	}
	if _, ok := s.snapshot.Product(productID); !ok {
		return nil, NewAnalysisError(ErrProductNotFound, productID)
	}
	if s.table.Empty() {
		return nil, NewAnalysisError(ErrNoData, "")
	}

	start := s.table.MaxDate().AddDate(0, 0, -days)

	quantities := make(map[string]int)
	for _, row := range s.table.rows {
		if row.ProductID == productID && row.Date.After(start) {
			quantities[utils.FormatDay(row.Date)] += row.Quantity
		}
	}

	series := make([]domain.QuantityPoint, 0, days)
	for i := 1; i <= days; i++ {
		day := utils.FormatDay(start.AddDate(0, 0, i))
		series = append(series, domain.QuantityPoint{Date: day, Quantity: quantities[day]})
	}

	return &domain.InventoryTrend{
		ProductID: productID,
		Days:      days,
		Series:    series,
	}, nil
}
