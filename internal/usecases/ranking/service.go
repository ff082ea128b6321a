package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	topCustomersLimit = 10
	rewardDiscount    = 15
)

var ErrCustomerNotFound = errors.New("customer not found")

type RankingService interface {
	// GetCustomerRanking ordena os clientes pelo total gasto e devolve os 10 primeiros
	GetCustomerRanking() *domain.CustomerRankingResponse

	// RecommendReward sugere um desconto no primeiro produto que o cliente ainda não comprou
	RecommendReward(customerID string) (*domain.LoyaltyReward, error)
}

type CustomerRankingService struct {
	snapshot *domain.Snapshot
}

func NewCustomerRankingService(snapshot *domain.Snapshot) RankingService {
	return &CustomerRankingService{
		snapshot: snapshot,
	}
}

type customerTotal struct {
	customerID string
	total      decimal.Decimal
}

// GetCustomerRanking agrupa na ordem da primeira aparição; empates mantêm essa ordem
func (s *CustomerRankingService) GetCustomerRanking() *domain.CustomerRankingResponse {
	totals := make([]*customerTotal, 0)
	index := make(map[string]*customerTotal)

	for _, p := range s.snapshot.Purchases() {
		spent := decimal.NewFromInt(int64(p.Quantity)).Mul(decimal.NewFromFloat(p.Price))

		entry, ok := index[p.CustomerID]
		if !ok {
			entry = &customerTotal{customerID: p.CustomerID, total: decimal.Zero}
			index[p.CustomerID] = entry
			totals = append(totals, entry)
		}
		entry.total = entry.total.Add(spent)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].total.GreaterThan(totals[j].total)
	})

	ranking := make([]domain.CustomerRankingItem, 0, topCustomersLimit)
	for i, entry := range totals {
		if i == topCustomersLimit {
			break
		}

		name := entry.customerID
		if customer, ok := s.snapshot.Customer(entry.customerID); ok {
			name = customer.DisplayName()
		}

		ranking = append(ranking, domain.CustomerRankingItem{
			CustomerID: entry.customerID,
			Name:       name,
			TotalSpent: utils.Money(entry.total),
			Position:   i + 1,
		})
	}

	return &domain.CustomerRankingResponse{TopCustomers: ranking}
}

func (s *CustomerRankingService) RecommendReward(customerID string) (*domain.LoyaltyReward, error) {
	purchases := s.snapshot.PurchasesByCustomer(customerID)
	if _, ok := s.snapshot.Customer(customerID); !ok && len(purchases) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	bought := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		bought[p.ProductID] = true
	}

	for _, product := range s.snapshot.Products() {
		if bought[product.ProductID] {
			continue
		}

		name := product.Name
		if name == "" {
			name = "an exciting new item"
		}

		return &domain.LoyaltyReward{
			CustomerID:         customerID,
			RecommendedProduct: product.ProductID,
			Recommendation: fmt.Sprintf(
				"As a thank you for being a valued customer, we recommend a special loyalty reward: %d%% off your next purchase of %s!",
				rewardDiscount, name,
			),
		}, nil
	}

	return &domain.LoyaltyReward{
		CustomerID:     customerID,
		Recommendation: "Customer has purchased all available products! Consider offering a generic discount or a new product preview.",
	}, nil
}
