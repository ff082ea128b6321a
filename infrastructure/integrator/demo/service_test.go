package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{name: "resumo financeiro", data: &domain.FinancialSummary{NetProfit: 10}, expected: financialText},
		{name: "rascunho de reposição", data: map[string]any{"low_stock_report": []domain.RestockItem{}}, expected: restockText},
		{name: "chatbot", data: domain.ChatContext{Query: "What is my Revenue?"}, expected: chatReplies[0].text},
		{name: "chatbot por ponteiro", data: &domain.ChatContext{Query: "inventory please"}, expected: chatReplies[1].text},
		{name: "conceito de design", data: domain.DesignBrief{Trend: "Modern"}, expected: designText},
		{name: "outros dados", data: []int{1, 2}, expected: genericText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := New().Generate(context.Background(), "any role", tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestChatReply(t *testing.T) {
	assert.Equal(t, chatReplies[0].text, ChatReply("revenue and inventory"))
	assert.Equal(t, chatReplies[2].text, ChatReply("who are my best customers"))
	assert.Equal(t, chatDefault, ChatReply("hello"))
}
