package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestRestockReport(t *testing.T) {
	tests := []struct {
		name     string
		data     domain.SnapshotData
		validate func(t *testing.T, report *domain.RestockReport)
	}{
		{
			name: "zero velocity below floor is flagged without reorder",
			data: domain.SnapshotData{
				Products: []domain.Product{{ProductID: "P1", Name: "Widget", StockLevel: 40}},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				assert.Equal(t, domain.RestockStatusLowStock, report.Status)
				require.Len(t, report.Items, 1)
				assert.Equal(t, domain.RestockItem{
					ProductID:         "P1",
					Name:              "Widget",
					CurrentStock:      40,
					SalesInLast30Days: 0,
					AvgDailySales:     0,
					DynamicThreshold:  50,
					RecommendationQty: 0,
				}, report.Items[0])
			},
		},
		{
			name: "zero velocity at the floor is flagged",
			data: domain.SnapshotData{
				Products: []domain.Product{{ProductID: "P1", StockLevel: 50}},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				require.Len(t, report.Items, 1)
				assert.Equal(t, "Unknown Product", report.Items[0].Name)
			},
		},
		{
			name: "healthy stock reports explicit OK",
			data: domain.SnapshotData{
				Products: []domain.Product{{ProductID: "P1", StockLevel: 51}, {ProductID: "P2", StockLevel: 500}},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				assert.Equal(t, domain.RestockStatusOK, report.Status)
				assert.Equal(t, "All stock levels are healthy.", report.Summary)
				assert.NotNil(t, report.Items)
				assert.Empty(t, report.Items)
			},
		},
		{
			name: "high velocity raises threshold and recommends reorder",
			data: domain.SnapshotData{
				Products: []domain.Product{{ProductID: "P1", Name: "Widget", StockLevel: 100, Price: 10, Cost: 4}},
				Purchases: []domain.Purchase{
					purchase("T1", "C1", "P1", 150, 10, day(0)),
					purchase("T2", "C1", "P1", 150, 10, day(20)),
				},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				require.Len(t, report.Items, 1)
				item := report.Items[0]
				assert.Equal(t, 300, item.SalesInLast30Days)
				assert.Equal(t, 10.0, item.AvgDailySales)
				assert.Equal(t, 210, item.DynamicThreshold)
				assert.Equal(t, 215, item.RecommendationQty)
			},
		},
		{
			name: "window is anchored at the latest purchase date",
			data: domain.SnapshotData{
				Products: []domain.Product{
					{ProductID: "P1", StockLevel: 10},
					{ProductID: "P2", StockLevel: 1000},
				},
				Purchases: []domain.Purchase{
					purchase("T1", "C1", "P1", 7, 1, day(0)),  // exatamente 30 dias antes: fora
					purchase("T2", "C1", "P1", 3, 1, day(1)),  // 29 dias antes: dentro
					purchase("T3", "C1", "P2", 1, 1, day(30)), // data máxima
				},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				require.Len(t, report.Items, 1)
				assert.Equal(t, "P1", report.Items[0].ProductID)
				assert.Equal(t, 3, report.Items[0].SalesInLast30Days)
				assert.Equal(t, 0.1, report.Items[0].AvgDailySales)
			},
		},
		{
			name: "fractional velocity keeps three decimals",
			data: domain.SnapshotData{
				Products:  []domain.Product{{ProductID: "P1", StockLevel: 5}},
				Purchases: []domain.Purchase{purchase("T1", "C1", "P1", 10, 1, day(0))},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				require.Len(t, report.Items, 1)
				assert.Equal(t, 0.333, report.Items[0].AvgDailySales)
				assert.Equal(t, 50, report.Items[0].DynamicThreshold)
				assert.Equal(t, 5, report.Items[0].RecommendationQty)
			},
		},
		{
			name: "products keep snapshot order",
			data: domain.SnapshotData{
				Products: []domain.Product{{ProductID: "P9", StockLevel: 1}, {ProductID: "P1", StockLevel: 2}, {ProductID: "P5", StockLevel: 3}},
			},
			validate: func(t *testing.T, report *domain.RestockReport) {
				require.Len(t, report.Items, 3)
				assert.Equal(t, "P9", report.Items[0].ProductID)
				assert.Equal(t, "P1", report.Items[1].ProductID)
				assert.Equal(t, "P5", report.Items[2].ProductID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newTestService(tt.data).RestockReport()
			require.NotNil(t, report)
			tt.validate(t, report)
		})
	}
}

func TestRestockThresholdNeverBelowFloor(t *testing.T) {
	for qty := 0; qty <= 3000; qty += 37 {
		for _, stock := range []int{0, 25, 50, 75, 1000} {
			item, flagged := evaluateProduct(domain.Product{ProductID: "P1", StockLevel: stock}, qty)

			assert.GreaterOrEqual(t, item.DynamicThreshold, minimumThreshold)
			assert.GreaterOrEqual(t, item.RecommendationQty, 0)
			assert.Equal(t, stock <= item.DynamicThreshold, flagged)

			if qty == 0 {
				assert.Equal(t, 0, item.RecommendationQty)
				assert.Equal(t, stock <= 50, flagged)
			}
		}
	}
}

func TestRestockIsDeterministic(t *testing.T) {
	data := domain.SnapshotData{
		Products:  []domain.Product{{ProductID: "P1", StockLevel: 10}, {ProductID: "P2", StockLevel: 20}},
		Purchases: []domain.Purchase{purchase("T1", "C1", "P1", 40, 1, day(3)), purchase("T2", "C1", "P2", 4, 1, day(9))},
	}
	svc := newTestService(data)

	assert.Equal(t, svc.RestockReport(), svc.RestockReport())
	assert.Equal(t, svc.RestockReport(), newTestService(data).RestockReport())
}
