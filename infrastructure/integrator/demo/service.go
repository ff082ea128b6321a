// Package demo implementa um gerador de texto fixo, usado quando nenhum provedor
// de linguagem está configurado. As respostas são marcadas com "Demo Mode".
package demo

import (
	"context"
	"strings"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const (
	financialText = "Demo Mode: Revenue is trending upward. Consider expanding marketing budget."
	restockText   = "Demo Mode: Please restock low inventory items."
	designText    = "Demo Mode: A bold hero banner, a product grid with generous spacing and the suggested palette applied to buttons."
	genericText   = "Demo Mode: Configure GEMINI_API_KEY or OPENAI_API_KEY for live insights."
)

type chatReply struct {
	keyword string
	text    string
}

// a primeira palavra-chave encontrada na pergunta vence
var chatReplies = []chatReply{
	{keyword: "revenue", text: "Demo Mode: Your current revenue is ₹125,000 with a growth rate of 15.5%."},
	{keyword: "inventory", text: "Demo Mode: You have 2 products with low stock that need restocking."},
	{keyword: "customers", text: "Demo Mode: Your top customer has spent ₹5,000 this month."},
}

const chatDefault = "Demo Mode: I'm running in demo mode. Please configure your GEMINI_API_KEY for full functionality."

type DemoGenerator struct{}

func New() *DemoGenerator {
	return &DemoGenerator{}
}

func (g *DemoGenerator) Generate(_ context.Context, _ string, data any) (string, error) {
	switch d := data.(type) {
	case domain.ChatContext:
		return ChatReply(d.Query), nil
	case *domain.ChatContext:
		return ChatReply(d.Query), nil
	case *domain.FinancialSummary:
		return financialText, nil
	case domain.DesignBrief:
		return designText, nil
	case map[string]any:
		if _, ok := d["low_stock_report"]; ok {
			return restockText, nil
		}
	}

	return genericText, nil
}

// ChatReply devolve a resposta fixa do chatbot para a pergunta
func ChatReply(query string) string {
	query = strings.ToLower(query)
	for _, reply := range chatReplies {
		if strings.Contains(query, reply.keyword) {
			return reply.text
		}
	}
	return chatDefault
}
