// Package scraper fornece o feed de preços de concorrentes. A coleta real não é
// feita; o feed estático devolve um conjunto fixo de registros.
package scraper

import (
	"context"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

type CompetitorFeed interface {
	Fetch(ctx context.Context) ([]domain.CompetitorRecord, error)
}

var staticRecords = []domain.CompetitorRecord{
	{ProductName: "ShopRival Wireless Mouse", Price: 24.99},
	{ProductName: "MegaMart Mechanical Keyboard", Price: 79.5},
	{ProductName: "QuickBuy USB-C Hub", Price: 34},
	{ProductName: "ValueStore Laptop Stand", Price: 45.75},
	{ProductName: "TechDeals Noise Cancelling Headphones", Price: 129.99},
}

type StaticFeed struct{}

func NewStaticFeed() CompetitorFeed {
	return &StaticFeed{}
}

func (f *StaticFeed) Fetch(ctx context.Context) ([]domain.CompetitorRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]domain.CompetitorRecord, len(staticRecords))
	copy(records, staticRecords)

	return records, nil
}
