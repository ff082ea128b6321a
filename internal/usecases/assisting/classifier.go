package assisting

import (
	"context"
	"strings"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

type Classifier interface {
	Classify(ctx context.Context, query string) (domain.Intent, error)
}

type keywordRule struct {
	intent   domain.Intent
	keywords []string
}

// as regras são avaliadas em ordem; a primeira com alguma palavra presente vence
var keywordRules = []keywordRule{
	{intent: domain.IntentFinancials, keywords: []string{"money", "profit", "revenue", "financial", "sales"}},
	{intent: domain.IntentInventory, keywords: []string{"stock", "inventory", "restock", "supply"}},
	{intent: domain.IntentLoyalty, keywords: []string{"reward", "loyalty", "customer"}},
	{intent: domain.IntentDesign, keywords: []string{"design", "theme", "layout", "style"}},
	{intent: domain.IntentWebsite, keywords: []string{"website", "bug", "error", "problem"}},
	{intent: domain.IntentGrowth, keywords: []string{"growth", "trend", "anomaly", "spike"}},
	{intent: domain.IntentCompetitor, keywords: []string{"competitor", "competition", "price"}},
	{intent: domain.IntentProducts, keywords: []string{"product", "item"}},
}

type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(_ context.Context, query string) (domain.Intent, error) {
	query = strings.ToLower(query)

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(query, keyword) {
				return rule.intent, nil
			}
		}
	}

	return domain.IntentUnknown, nil
}

// FallbackClassifier usa o classificador principal e recorre ao secundário quando ele falha
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

func NewFallbackClassifier(primary, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{
		primary:  primary,
		fallback: fallback,
	}
}

func (c *FallbackClassifier) Classify(ctx context.Context, query string) (domain.Intent, error) {
	intent, err := c.primary.Classify(ctx, query)
	if err == nil {
		return intent, nil
	}

	log.ForContext(ctx).WithError(err).Warn("assistant: classifier failed, using keyword fallback")

	return c.fallback.Classify(ctx, query)
}
