package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/report"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/assisting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/designing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/notifying"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
)

func Healthcheck(snapshot *domain.Snapshot) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(snapshot),
		},
	}
}

func Catalog(snapshot *domain.Snapshot, competitors repository.CompetitorRepository) []router.Route {
	withData := []func(http.Handler) http.Handler{RequireData(snapshot)}

	return []router.Route{
		{
			Path:        "/api/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(snapshot),
			Middlewares: withData,
		},
		{
			Path:        "/api/inventory",
			Method:      http.MethodGet,
			Handler:     ListInventory(snapshot),
			Middlewares: withData,
		},
		{
			Path:        "/api/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(snapshot),
			Middlewares: withData,
		},
		{
			Path:        "/api/purchases",
			Method:      http.MethodGet,
			Handler:     ListPurchases(snapshot),
			Middlewares: withData,
		},
		{
			Path:        "/api/purchases/:customer_id",
			Method:      http.MethodGet,
			Handler:     ListCustomerPurchases(snapshot),
			Middlewares: withData,
		},
		{
			Path:    "/api/competitors",
			Method:  http.MethodGet,
			Handler: ListCompetitors(competitors),
		},
	}
}

func Analytics(snapshot *domain.Snapshot, analyzer analyzing.Analyzer, insighter insighting.Insighter) []router.Route {
	withData := []func(http.Handler) http.Handler{RequireData(snapshot)}

	return []router.Route{
		{
			Path:        "/api/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(analyzer),
			Middlewares: withData,
		},
		{
			Path:        "/api/growth",
			Method:      http.MethodGet,
			Handler:     GetGrowthInsights(insighter),
			Middlewares: withData,
		},
		{
			Path:        "/api/financials",
			Method:      http.MethodGet,
			Handler:     GetFinancials(analyzer),
			Middlewares: withData,
		},
		{
			Path:        "/api/financials/insights",
			Method:      http.MethodGet,
			Handler:     GetFinancialInsights(insighter),
			Middlewares: withData,
		},
		{
			Path:        "/api/financials/tax-advice",
			Method:      http.MethodGet,
			Handler:     GetTaxAdvice(insighter),
			Middlewares: withData,
		},
		{
			Path:        "/api/inventory/automation",
			Method:      http.MethodGet,
			Handler:     GetInventoryAutomation(insighter),
			Middlewares: withData,
		},
		{
			Path:        "/api/inventory/trends",
			Method:      http.MethodGet,
			Handler:     GetInventoryTrends(analyzer),
			Middlewares: withData,
		},
		{
			Path:        "/api/invoice/:purchase_id",
			Method:      http.MethodGet,
			Handler:     GetInvoice(analyzer),
			Middlewares: withData,
		},
	}
}

func Reports(snapshot *domain.Snapshot, exporter report.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/financials/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(exporter),
			Middlewares: []func(http.Handler) http.Handler{RequireData(snapshot)},
		},
	}
}

func Market(
	snapshot *domain.Snapshot,
	insighter insighting.Insighter,
	competitors repository.CompetitorRepository,
	syncer CompetitorSyncer,
) []router.Route {
	return []router.Route{
		{
			Path:        "/api/sku/market-analysis",
			Method:      http.MethodGet,
			Handler:     GetMarketAnalysis(insighter, competitors),
			Middlewares: []func(http.Handler) http.Handler{RequireData(snapshot)},
		},
		{
			Path:    "/api/competitor/scrape",
			Method:  http.MethodGet,
			Handler: ScrapeCompetitors(syncer, competitors),
		},
		{
			Path:    "/api/competitor/scrape",
			Method:  http.MethodPost,
			Handler: ScrapeCompetitors(syncer, competitors),
		},
	}
}

func Loyalty(snapshot *domain.Snapshot, service ranking.RankingService) []router.Route {
	withData := []func(http.Handler) http.Handler{RequireData(snapshot)}

	return []router.Route{
		{
			Path:        "/api/customers/loyalty",
			Method:      http.MethodGet,
			Handler:     GetCustomerRanking(service),
			Middlewares: withData,
		},
		{
			Path:        "/api/loyalty/:customer_id/reward",
			Method:      http.MethodGet,
			Handler:     GetLoyaltyReward(service),
			Middlewares: withData,
		},
	}
}

// Storefront não depende do snapshot de vendas
func Storefront(designer designing.Designer, monitor monitoring.Monitor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/store-design/current",
			Method:  http.MethodGet,
			Handler: GetCurrentStoreDesign(designer),
		},
		{
			Path:    "/api/store-design/idea",
			Method:  http.MethodGet,
			Handler: GetStoreDesignIdea(designer),
		},
		{
			Path:    "/api/website/problems",
			Method:  http.MethodGet,
			Handler: GetWebsiteProblems(monitor),
		},
	}
}

func Email(notifier notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:    "/api/email/restock",
			Method:  http.MethodPost,
			Handler: SendRestockEmail(notifier),
		},
	}
}

// Assistant não usa RequireData: o próprio serviço devolve o erro de indisponibilidade
func Assistant(assistant assisting.Assistant) []router.Route {
	return []router.Route{
		{
			Path:    "/ai/query",
			Method:  http.MethodPost,
			Handler: AssistantQuery(assistant),
		},
		{
			Path:    "/ai/chatbot",
			Method:  http.MethodPost,
			Handler: AssistantChat(assistant),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
