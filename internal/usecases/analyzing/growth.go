package analyzing

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	recentDays       = 7
	anomalyThreshold = 20.0
)

func (s *Service) GrowthReport() (*domain.GrowthReport, error) {
	return AnalyzeGrowth(s.table)
}

type dailyBucket struct {
	date    time.Time
	revenue decimal.Decimal
}

// DailyRevenue agrega a receita por dia em ordem cronológica; só entram dias com venda
func DailyRevenue(table *PurchaseTable) ([]domain.DailyRevenue, []decimal.Decimal) {
	buckets := make(map[string]*dailyBucket)
	for _, row := range table.rows {
		key := utils.FormatDay(row.Date)
		b, ok := buckets[key]
		if !ok {
			b = &dailyBucket{date: row.Date, revenue: decimal.Zero}
			buckets[key] = b
		}
		b.revenue = b.revenue.Add(row.Revenue)
	}

	ordered := make([]*dailyBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].date.Before(ordered[j].date)
	})

	series := make([]domain.DailyRevenue, len(ordered))
	revenues := make([]decimal.Decimal, len(ordered))
	for i, b := range ordered {
		series[i] = domain.DailyRevenue{Date: b.date, Revenue: utils.Money(b.revenue)}
		revenues[i] = b.revenue
	}

	return series, revenues
}

// AnalyzeGrowth compara a média dos últimos 7 registros com a média histórica.
// Menos de dois dias distintos gera status insufficient_data, não erro.
func AnalyzeGrowth(table *PurchaseTable) (*domain.GrowthReport, error) {
	if table.Empty() {
		return nil, NewAnalysisError(ErrNoData, "")
	}

	series, revenues := DailyRevenue(table)

	spanDays := int(math.Round(series[len(series)-1].Date.Sub(series[0].Date).Hours() / 24))
	if len(series) < 2 || spanDays < 1 {
		return &domain.GrowthReport{
			Status:  domain.GrowthStatusInsufficientData,
			Message: ErrInsufficientData.Error(),
			Daily:   series,
		}, nil
	}

	total := decimal.Sum(revenues[0], revenues[1:]...)
	average := total.Div(decimal.NewFromInt(int64(len(revenues))))

	tail := revenues[max(0, len(revenues)-recentDays):]
	recent := decimal.Sum(tail[0], tail[1:]...)
	last7Avg := recent.Div(decimal.NewFromInt(recentDays))

	avg := average.InexactFloat64()
	last7 := last7Avg.InexactFloat64()
	pctChange := percentChange(last7, avg)

	return &domain.GrowthReport{
		Status: domain.GrowthStatusOK,
		Daily:  series,
		Metrics: &domain.GrowthMetrics{
			TotalRevenue:         utils.Money(total),
			TotalDaysTracked:     spanDays,
			AverageDailyRevenue:  utils.Money(average),
			Last7DayRevenue:      utils.Money(recent),
			Last7DayAvg:          utils.Money(last7Avg),
			PerformanceVsAverage: strconv.FormatFloat(utils.Round(pctChange, 2), 'f', -1, 64) + "%",
		},
		Anomaly: &domain.AnomalyInsight{
			Last7DayAvg:   utils.Money(last7Avg),
			HistoricalAvg: utils.Money(average),
			PercentChange: utils.Round(pctChange, 2),
			Type:          classifyAnomaly(pctChange),
		},
	}, nil
}

func percentChange(recent, historical float64) float64 {
	if historical == 0 {
		return 0
	}
	return (recent - historical) / historical * 100
}

func classifyAnomaly(pctChange float64) domain.AnomalyType {
	switch {
	case pctChange >= anomalyThreshold:
		return domain.AnomalyPositiveSpike
	case pctChange <= -anomalyThreshold:
		return domain.AnomalyNegativeDrop
	default:
		return domain.AnomalyNone
	}
}
