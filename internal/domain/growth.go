package domain

import "time"

type GrowthStatus string

const (
	GrowthStatusOK               GrowthStatus = "ok"
	GrowthStatusInsufficientData GrowthStatus = "insufficient_data"
)

type AnomalyType string

const (
	AnomalyNone          AnomalyType = "none"
	AnomalyPositiveSpike AnomalyType = "positive_spike"
	AnomalyNegativeDrop  AnomalyType = "negative_drop"
)

type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

type GrowthMetrics struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalDaysTracked     int     `json:"total_days_tracked"`
	AverageDailyRevenue  float64 `json:"average_daily_revenue"`
	Last7DayRevenue      float64 `json:"last_7_day_revenue"`
	Last7DayAvg          float64 `json:"last_7_day_avg"`
	PerformanceVsAverage string  `json:"performance_vs_average"`
}

type AnomalyInsight struct {
	Last7DayAvg   float64     `json:"last_7_day_avg"`
	HistoricalAvg float64     `json:"historical_avg"`
	PercentChange float64     `json:"percent_change"`
	Type          AnomalyType `json:"anomaly_type"`
}

// GrowthReport traz a série diária, as métricas e a classificação de anomalia.
// Com status insufficient_data apenas a série é preenchida.
type GrowthReport struct {
	Status  GrowthStatus    `json:"status"`
	Message string          `json:"message,omitempty"`
	Daily   []DailyRevenue  `json:"daily_sales_data"`
	Metrics *GrowthMetrics  `json:"growth_metrics,omitempty"`
	Anomaly *AnomalyInsight `json:"local_insights,omitempty"`
}

type GrowthInsights struct {
	*GrowthReport
	StrategyAdvice *Narration `json:"growth_strategy_advice,omitempty"`
}

// Overview alimenta o gráfico diário da página inicial
type Overview struct {
	Metrics         *GrowthMetrics `json:"metrics"`
	DailySalesChart []DailyRevenue `json:"daily_sales_chart_data"`
}
