// Package storefront expõe o tema publicado e o log recente da loja virtual.
// Não há integração com a plataforma da loja; a fonte estática devolve dados fixos.
package storefront

import (
	"context"
	"slices"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

type DesignSource interface {
	CurrentDesign(ctx context.Context) (domain.StoreDesign, error)
}

type LogSource interface {
	RecentLogs(ctx context.Context) ([]domain.SiteLogEntry, error)
}

var currentDesign = domain.StoreDesign{
	Name: "Current E-commerce Theme v3.2",
	Description: "Our existing clean and functional design. Optimized for fast loading but could benefit from a modern refresh. " +
		"It features a simple header, a main content area with product grids, and a basic footer. " +
		"Colors are muted with primary green accents.",
	LastUpdated: "2024-03-10",
	StyleElements: domain.DesignStyle{
		LayoutSummary: "Standard 2-column layout for product listings, single-column product detail page.",
		ColorPalette:  []string{"#F8F8F8", "#4A4A4A", "#A0A0A0", "#008000"},
		Typography: domain.Typography{
			Headings: "Arial, sans-serif",
			Body:     "Helvetica, sans-serif",
		},
		InteractiveElements: "Simple button hovers, no complex animations.",
	},
	MockPreviewURL: "https://via.placeholder.com/800x450/e0e0e0/555555?text=Existing+Store+Design+Preview",
}

var recentLogs = []domain.SiteLogEntry{
	{Timestamp: logTime(10, 0), Level: domain.LogLevelError, Message: "Payment gateway timeout on checkout page."},
	{Timestamp: logTime(10, 5), Level: domain.LogLevelInfo, Message: "User login successful for C005."},
	{Timestamp: logTime(10, 10), Level: domain.LogLevelWarning, Message: "High page load time detected on product page P003."},
	{Timestamp: logTime(11, 0), Level: domain.LogLevelError, Message: "Database connection error."},
}

func logTime(hour, minute int) time.Time {
	return time.Date(2025, 7, 18, hour, minute, 0, 0, time.UTC)
}

type StaticStorefront struct{}

func NewStaticStorefront() *StaticStorefront {
	return &StaticStorefront{}
}

func (s *StaticStorefront) CurrentDesign(ctx context.Context) (domain.StoreDesign, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoreDesign{}, err
	}

	design := currentDesign
	design.StyleElements.ColorPalette = slices.Clone(currentDesign.StyleElements.ColorPalette)

	return design, nil
}

func (s *StaticStorefront) RecentLogs(ctx context.Context) ([]domain.SiteLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(recentLogs), nil
}
