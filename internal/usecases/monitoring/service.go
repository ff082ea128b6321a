// Package monitoring lê o log recente da loja virtual e aponta os problemas
// (erros e alertas) com uma ação sugerida para cada um.
package monitoring

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

const defaultFix = "Action: Investigate related system logs for more details."

type fixRule struct {
	keywords []string
	fix      string
}

// a primeira regra com alguma palavra-chave na mensagem vence
var fixRules = []fixRule{
	{keywords: []string{"payment gateway", "checkout"}, fix: "Action: Review payment gateway logs and configuration immediately."},
	{keywords: []string{"page load time"}, fix: "Action: Optimize image sizes and review CDN/hosting settings."},
	{keywords: []string{"database connection error"}, fix: "Action: Check database server status and connection parameters."},
}

type Monitor interface {
	// WebsiteProblems filtra erros e alertas do log, na ordem em que aparecem
	WebsiteProblems(ctx context.Context) (*domain.WebsiteHealth, error)
}

type Service struct {
	logs storefront.LogSource
}

func NewService(logs storefront.LogSource) Monitor {
	return &Service{logs: logs}
}

func (s *Service) WebsiteProblems(ctx context.Context) (*domain.WebsiteHealth, error) {
	entries, err := s.logs.RecentLogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reading website logs")
	}

	problems := make([]domain.WebsiteProblem, 0, len(entries))
	for _, entry := range entries {
		if entry.Level != domain.LogLevelError && entry.Level != domain.LogLevelWarning {
			continue
		}

		problems = append(problems, domain.WebsiteProblem{
			Timestamp:    entry.Timestamp,
			Type:         entry.Level,
			Description:  entry.Message,
			SuggestedFix: SuggestFix(entry.Message),
		})
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"entries":  len(entries),
		"problems": len(problems),
	}).Info("monitoring: website logs checked")

	return &domain.WebsiteHealth{Problems: problems}, nil
}

// SuggestFix escolhe a ação recomendada para a mensagem de log
func SuggestFix(message string) string {
	message = strings.ToLower(message)
	for _, rule := range fixRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(message, keyword) {
				return rule.fix
			}
		}
	}
	return defaultFix
}
