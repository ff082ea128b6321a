package assisting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/assisting/mocks"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		query    string
		expected domain.Intent
	}{
		{"How much PROFIT did we make?", domain.IntentFinancials},
		{"sales this week", domain.IntentFinancials},
		{"Which items need a restock?", domain.IntentInventory},
		{"what about supply levels", domain.IntentInventory},
		{"loyalty reward for C002", domain.IntentLoyalty},
		{"who is my best customer", domain.IntentLoyalty},
		{"suggest a new store design", domain.IntentDesign},
		{"I want a bohemian theme", domain.IntentDesign},
		{"modern layout ideas", domain.IntentDesign},
		{"is the website down?", domain.IntentWebsite},
		{"any bug reports", domain.IntentWebsite},
		{"checkout throws an error", domain.IntentWebsite},
		{"design trend for summer", domain.IntentDesign},
		{"problem with restock", domain.IntentInventory},
		{"any growth anomaly?", domain.IntentGrowth},
		{"what does the competition charge", domain.IntentCompetitor},
		{"is our price too high", domain.IntentCompetitor},
		{"list every product", domain.IntentProducts},
		{"hello there", domain.IntentUnknown},
		{"", domain.IntentUnknown},
	}

	classifier := NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent, err := classifier.Classify(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, intent)
		})
	}
}

func TestFallbackClassifier(t *testing.T) {
	t.Run("usa o principal quando ele responde", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mocks.NewMockClassifier(ctrl)

		primary.EXPECT().Classify(gomock.Any(), "who buys most?").Return(domain.IntentCustomers, nil)

		intent, err := NewFallbackClassifier(primary, NewKeywordClassifier()).Classify(context.Background(), "who buys most?")
		require.NoError(t, err)
		assert.Equal(t, domain.IntentCustomers, intent)
	})

	t.Run("recorre às palavras-chave quando o principal falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mocks.NewMockClassifier(ctrl)

		primary.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(domain.IntentUnknown, errors.New("timeout"))

		intent, err := NewFallbackClassifier(primary, NewKeywordClassifier()).Classify(context.Background(), "show revenue")
		require.NoError(t, err)
		assert.Equal(t, domain.IntentFinancials, intent)
	})
}
