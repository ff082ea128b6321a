package domain

import "strings"

// Intent é a categoria de uma pergunta livre feita ao assistente
type Intent string

const (
	IntentFinancials Intent = "financials"
	IntentInventory  Intent = "inventory"
	IntentLoyalty    Intent = "loyalty"
	IntentDesign     Intent = "design"
	IntentWebsite    Intent = "website"
	IntentCompetitor Intent = "competitor"
	IntentGrowth     Intent = "growth"
	IntentCustomers  Intent = "customers"
	IntentProducts   Intent = "products"
	IntentUnknown    Intent = "unknown"
)

// ChatContext é o contexto enviado ao gerador de texto pelo chatbot
type ChatContext struct {
	Query             string            `json:"user_query"`
	FinancialSummary  *FinancialSummary `json:"financial_summary,omitempty"`
	LowStockInventory []RestockItem     `json:"inventory_status"`
}

type AssistantQuery struct {
	Query string `json:"query" validate:"required,max=2000"`
}

type ChatReply struct {
	Response string `json:"response"`
}

type AssistantAnswer struct {
	Intent   Intent `json:"intent"`
	Response any    `json:"response"`
}

// ParseIntent converte o rótulo devolvido por um classificador em Intent.
// A ordem das comparações define a prioridade quando o rótulo cita mais de uma área.
func ParseIntent(label string) Intent {
	label = strings.ToLower(strings.TrimSpace(label))

	switch {
	case label == "":
		return IntentUnknown
	case strings.Contains(label, "financial"):
		return IntentFinancials
	case strings.Contains(label, "restock"), strings.Contains(label, "inventory"):
		return IntentInventory
	case strings.Contains(label, "reward"), strings.Contains(label, "loyalty"):
		return IntentLoyalty
	case strings.Contains(label, "design"), strings.Contains(label, "theme"):
		return IntentDesign
	case strings.Contains(label, "website"), strings.Contains(label, "bug"), strings.Contains(label, "problem"):
		return IntentWebsite
	case strings.Contains(label, "growth"), strings.Contains(label, "trend"):
		return IntentGrowth
	case strings.Contains(label, "competitor"), strings.Contains(label, "price"):
		return IntentCompetitor
	case strings.Contains(label, "customer"):
		return IntentCustomers
	case strings.Contains(label, "product"):
		return IntentProducts
	default:
		return IntentUnknown
	}
}
