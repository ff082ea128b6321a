package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	minMargin = 0.20
	undercut  = 0.01
)

func (s *Service) MarketAnalysis(productID string, competitors []domain.CompetitorRecord) (*domain.MarketAnalysis, error) {
	product, ok := s.snapshot.Product(productID)
	if !ok {
		return nil, NewAnalysisError(ErrProductNotFound, productID)
	}

	return AnalyzeMarket(product, competitors, minMargin)
}

// AnalyzeMarket escolhe o concorrente de preço mais próximo (empate fica com o primeiro
// da lista) e recomenda um preço que nunca fica abaixo do piso de margem.
func AnalyzeMarket(product domain.Product, competitors []domain.CompetitorRecord, margin float64) (*domain.MarketAnalysis, error) {
	if len(competitors) == 0 {
		return nil, NewAnalysisError(ErrNoCompetitors, product.ProductID)
	}

	closest := competitors[0]
	bestDistance := math.Abs(closest.Price - product.Price)
	for _, c := range competitors[1:] {
		if d := math.Abs(c.Price - product.Price); d < bestDistance {
			closest = c
			bestDistance = d
		}
	}

	minPrice := minPriceForMargin(product, margin)

	var recommended float64
	var reason string
	if closest.Price < product.Price {
		recommended = math.Max(closest.Price-undercut, minPrice)
		reason = fmt.Sprintf("Consider reducing price to %.2f to be competitive with %s.", recommended, closest.ProductName)
	} else {
		recommended = math.Max(product.Price, minPrice)
		reason = fmt.Sprintf("Competitor prices are higher; you may maintain price at %.2f or test a small premium.", recommended)
	}

	return &domain.MarketAnalysis{
		InternalProduct:   product,
		ClosestCompetitor: closest,
		PriceGap:          utils.RoundWithTwoDecimalPlace(product.Price - closest.Price),
		MinPrice:          utils.RoundWithTwoDecimalPlace(minPrice),
		Recommendation: domain.PricingRecommendation{
			RecommendedPrice: utils.RoundWithTwoDecimalPlace(recommended),
			Reason:           reason,
		},
	}, nil
}

// minPriceForMargin é cost/(1-margin); com margem >= 100% o piso passa a ser o próprio preço
func minPriceForMargin(product domain.Product, margin float64) float64 {
	complement := 1 - margin
	if complement <= 0 {
		return product.Price
	}
	return product.Cost / complement
}
