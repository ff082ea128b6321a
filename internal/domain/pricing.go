package domain

type PricingRecommendation struct {
	RecommendedPrice float64 `json:"recommended_price"`
	Reason           string  `json:"reason"`
}

type MarketAnalysis struct {
	InternalProduct   Product               `json:"internal_product"`
	ClosestCompetitor CompetitorRecord      `json:"closest_competitor"`
	PriceGap          float64               `json:"price_gap"`
	MinPrice          float64               `json:"min_price_to_maintain_margin"`
	Recommendation    PricingRecommendation `json:"computed_recommendation"`
}

type MarketInsights struct {
	Analysis      *MarketAnalysis `json:"product_market_data"`
	PricingAdvice Narration       `json:"pricing_recommendation"`
}
