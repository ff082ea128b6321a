// Package designing descreve o tema publicado da loja e sugere novos conceitos
// visuais a partir de um estilo, com a descrição narrada pelo gerador de texto.
package designing

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
)

const (
	DefaultTrend     = "Modern"
	DefaultStoreType = "fashion boutique"

	uniqueElementIdea = "Dynamic product showcases with smooth transitions on scroll and interactive 3D views."
)

type trendStyle struct {
	palette    []string
	typography domain.Typography
	detail     string
}

// estilo desconhecido cai em "modern"
var trendStyles = map[string]trendStyle{
	"modern": {
		palette:    []string{"#2C3E50", "#ECF0F1", "#1ABC9C", "#3498DB"},
		typography: domain.Typography{Headings: "Poppins", Body: "Lato"},
		detail:     "Expect crisp layouts, subtle hover effects, and a focus on user experience.",
	},
	"bohemian": {
		palette:    []string{"#A0522D", "#F5DEB3", "#8B4513", "#D2B48C"},
		typography: domain.Typography{Headings: "Playfair Display", Body: "Lora"},
		detail:     "Incorporate natural textures, earthy tones and a relaxed, artistic feel.",
	},
	"industrial": {
		palette:    []string{"#34495E", "#7F8C8D", "#95A5A6", "#2C3E50"},
		typography: domain.Typography{Headings: "Roboto Condensed", Body: "Open Sans"},
		detail:     "Utilize raw textures like concrete and metal, exposed elements and strong utilitarian typography.",
	},
	"vintage": {
		palette:    []string{"#8B4513", "#D2B48C", "#F0E68C", "#B0C4DE"},
		typography: domain.Typography{Headings: "Lobster Two", Body: "Merriweather"},
		detail:     "Draw inspiration from retro eras with classic fonts and muted color schemes.",
	},
	"minimalist": {
		palette:    []string{"#FFFFFF", "#333333", "#E0E0E0", "#607D8B"},
		typography: domain.Typography{Headings: "Montserrat", Body: "Open Sans Light"},
		detail:     "Prioritize simplicity with ample white space and a limited color palette.",
	},
}

// Trends lista os estilos com paleta própria, na ordem em que são procurados num texto livre
var Trends = []string{"modern", "bohemian", "industrial", "vintage", "minimalist"}

type Designer interface {
	// CurrentDesign devolve o tema publicado hoje na loja
	CurrentDesign(ctx context.Context) (*domain.CurrentStoreDesign, error)

	// DesignIdea sugere paleta, tipografia e layout para o estilo e narra o conceito completo
	DesignIdea(ctx context.Context, trend, storeType string) (*domain.DesignIdea, error)
}

type Service struct {
	source    storefront.DesignSource
	generator insighting.Generator
	timeout   time.Duration
}

// NewService recebe generator nil quando nenhum provedor está disponível; a ideia sai sem narração
func NewService(source storefront.DesignSource, generator insighting.Generator, timeout time.Duration) Designer {
	return &Service{
		source:    source,
		generator: generator,
		timeout:   timeout,
	}
}

func (s *Service) CurrentDesign(ctx context.Context) (*domain.CurrentStoreDesign, error) {
	design, err := s.source.CurrentDesign(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading current store design")
	}

	return &domain.CurrentStoreDesign{Design: design}, nil
}

func (s *Service) DesignIdea(ctx context.Context, trend, storeType string) (*domain.DesignIdea, error) {
	trend = strings.TrimSpace(trend)
	if trend == "" {
		trend = DefaultTrend
	}
	storeType = strings.TrimSpace(storeType)
	if storeType == "" {
		storeType = DefaultStoreType
	}

	current, err := s.source.CurrentDesign(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading current store design")
	}

	style := styleFor(trend)
	suggested := SuggestStyle(trend)

	narration := insighting.Narrate(ctx, s.generator, s.timeout, insighting.RoleStoreDesigner(trend, storeType), domain.DesignBrief{
		Trend:              trend,
		StoreType:          storeType,
		SuggestedStyle:     suggested,
		CurrentDesignNotes: current,
	})

	lower := strings.ToLower(trend)
	return &domain.DesignIdea{
		Trend:     trend,
		StoreType: storeType,
		Description: fmt.Sprintf(
			"For a '%s' with a '%s' design, envision a %s aesthetic with clean lines, clear visual hierarchy "+
				"and high-quality product photography. %s",
			storeType, trend, lower, style.detail,
		),
		StyleElements:     suggested,
		UniqueElementIdea: uniqueElementIdea,
		DesignDescription: narration,
		MockPreviewURL:    previewURL(trend, style.palette),
	}, nil
}

// SuggestStyle monta os elementos visuais determinísticos do estilo
func SuggestStyle(trend string) domain.DesignStyle {
	style := styleFor(trend)
	lower := strings.ToLower(strings.TrimSpace(trend))

	return domain.DesignStyle{
		LayoutSummary:       fmt.Sprintf("Clean %s grid layout for products, sticky navigation bar, prominent full-width hero section.", lower),
		ColorPalette:        slices.Clone(style.palette),
		Typography:          style.typography,
		InteractiveElements: fmt.Sprintf("Smooth %s transitions on hover, subtle parallax scrolling on banners, elegant modal pop-ups.", lower),
	}
}

// ExtractTrend procura um dos estilos conhecidos no texto e o devolve capitalizado
func ExtractTrend(text string) (string, bool) {
	text = strings.ToLower(text)
	for _, trend := range Trends {
		if strings.Contains(text, trend) {
			return strings.ToUpper(trend[:1]) + trend[1:], true
		}
	}
	return "", false
}

func styleFor(trend string) trendStyle {
	if style, ok := trendStyles[strings.ToLower(strings.TrimSpace(trend))]; ok {
		return style
	}
	return trendStyles["modern"]
}

// a cor de fundo é a segunda da paleta e a do texto a primeira
func previewURL(trend string, palette []string) string {
	return fmt.Sprintf(
		"https://via.placeholder.com/800x450/%s/%s?text=%s+Design+Mockup",
		strings.TrimPrefix(palette[1], "#"),
		strings.TrimPrefix(palette[0], "#"),
		url.QueryEscape(trend),
	)
}
