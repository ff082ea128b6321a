// Package assisting responde perguntas livres do dono da loja: classifica a
// intenção e encaminha para a análise correspondente, ou conversa via chatbot.
package assisting

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/designing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

const (
	DefaultCustomerID = "C001"

	// estilo usado quando a pergunta sobre design não cita nenhum
	DefaultDesignTrend = "Minimalist"

	HelpMessage = "I can help you with: financials, inventory/restocking, loyalty rewards, store design, website health, " +
		"growth trends, competitor analysis, customer data, and product information. What would you like to know?"

	ChatFailureMessage = "Sorry, I'm having trouble answering right now. Please try again."
)

var ErrAssistantUnavailable = errors.New("AI Assistant is unavailable (API key error or data not loaded)")

var customerIDPattern = regexp.MustCompile(`C\d{3}`)

type Assistant interface {
	// Query classifica a pergunta e devolve o resultado da análise correspondente
	Query(ctx context.Context, query string) (*domain.AssistantAnswer, error)

	// Chat envia a pergunta com o contexto do negócio ao gerador de texto
	Chat(ctx context.Context, query string) (string, error)
}

type Service struct {
	classifier  Classifier
	analyzer    analyzing.Analyzer
	ranking     ranking.RankingService
	competitors repository.CompetitorRepository
	designer    designing.Designer
	monitor     monitoring.Monitor
	snapshot    *domain.Snapshot
	generator   insighting.Generator
	timeout     time.Duration
}

// NewService recebe generator nil quando nenhum provedor está disponível; nesse caso o chatbot responde indisponível
func NewService(
	classifier Classifier,
	analyzer analyzing.Analyzer,
	rankingService ranking.RankingService,
	competitors repository.CompetitorRepository,
	designer designing.Designer,
	monitor monitoring.Monitor,
	snapshot *domain.Snapshot,
	generator insighting.Generator,
	timeout time.Duration,
) Assistant {
	return &Service{
		classifier:  classifier,
		analyzer:    analyzer,
		ranking:     rankingService,
		competitors: competitors,
		designer:    designer,
		monitor:     monitor,
		snapshot:    snapshot,
		generator:   generator,
		timeout:     timeout,
	}
}

func (s *Service) Query(ctx context.Context, query string) (*domain.AssistantAnswer, error) {
	if !s.snapshot.Available() {
		return nil, repository.ErrDataUnavailable
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	intent, err := s.classifier.Classify(classifyCtx, query)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("intent", string(intent)).Info("assistant: query classified")

	response, err := s.route(ctx, intent, query)
	if err != nil {
		return nil, err
	}

	return &domain.AssistantAnswer{
		Intent:   intent,
		Response: response,
	}, nil
}

func (s *Service) route(ctx context.Context, intent domain.Intent, query string) (any, error) {
	switch intent {
	case domain.IntentFinancials:
		return s.analyzer.FinancialSummary()
	case domain.IntentInventory:
		return s.analyzer.RestockReport(), nil
	case domain.IntentLoyalty:
		return s.ranking.RecommendReward(ExtractCustomerID(query))
	case domain.IntentDesign:
		trend, ok := designing.ExtractTrend(query)
		if !ok {
			trend = DefaultDesignTrend
		}
		return s.designer.DesignIdea(ctx, trend, "")
	case domain.IntentWebsite:
		return s.monitor.WebsiteProblems(ctx)
	case domain.IntentGrowth:
		return s.analyzer.GrowthReport()
	case domain.IntentCompetitor:
		return s.competitors.List()
	case domain.IntentCustomers:
		return s.snapshot.Customers(), nil
	case domain.IntentProducts:
		return s.snapshot.Products(), nil
	default:
		return HelpMessage, nil
	}
}

// ExtractCustomerID procura um id no formato C000 na pergunta; sem id usa o cliente padrão
func ExtractCustomerID(query string) string {
	if match := customerIDPattern.FindString(strings.ToUpper(query)); match != "" {
		return match
	}
	return DefaultCustomerID
}

func (s *Service) Chat(ctx context.Context, query string) (string, error) {
	if s.generator == nil || !s.snapshot.Available() {
		return "", ErrAssistantUnavailable
	}

	// mesmo caminho das narrações: timeout e panic do gerador viram resposta de falha
	narration := insighting.Narrate(ctx, s.generator, s.timeout, insighting.RoleChatbot, s.chatContext(query))
	if !narration.Available {
		log.ForContext(ctx).WithField("reason", narration.Error).Error("assistant: chatbot query failed")
		return ChatFailureMessage, nil
	}

	return FormatResponse(narration.Text), nil
}

// chatContext junta o P&L e os itens com estoque baixo; sem compras o resumo fica de fora
func (s *Service) chatContext(query string) domain.ChatContext {
	chatContext := domain.ChatContext{
		Query:             query,
		LowStockInventory: s.analyzer.RestockReport().Items,
	}

	if summary, err := s.analyzer.FinancialSummary(); err == nil {
		chatContext.FinancialSummary = summary
	}

	if chatContext.LowStockInventory == nil {
		chatContext.LowStockInventory = []domain.RestockItem{}
	}

	return chatContext
}
