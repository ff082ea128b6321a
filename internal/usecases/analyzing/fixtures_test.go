package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var baseDay = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return baseDay.AddDate(0, 0, offset).Add(10 * time.Hour)
}

func purchase(id, customerID, productID string, qty int, price float64, ts time.Time) domain.Purchase {
	return domain.Purchase{
		PurchaseID: id,
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   qty,
		Price:      price,
		Timestamp:  ts,
	}
}

// dailyPurchases gera uma compra por dia com a receita informada (quantidade 1)
func dailyPurchases(revenues ...float64) []domain.Purchase {
	purchases := make([]domain.Purchase, 0, len(revenues))
	for i, r := range revenues {
		purchases = append(purchases, purchase(fmt.Sprintf("T%03d", i), "C1", "P1", 1, r, day(i)))
	}
	return purchases
}

func newTestService(data domain.SnapshotData) *Service {
	return NewService(domain.NewSnapshot(data))
}
