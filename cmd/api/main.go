package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/demo"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/openai"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/commerce-insights-api/infrastructure/mailer"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/api"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/report"
	"github.com/vfg2006/commerce-insights-api/internal/scheduler"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/assisting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/designing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/notifying"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

var reportOut string

func main() {
	rootCmd := &cobra.Command{
		Use:          "api",
		Short:        "Commerce insights API",
		SilenceUsage: true,
		RunE:         runServer,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServer,
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write the analytics workbook (xlsx) to disk",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "commerce-report.xlsx", "Output path of the workbook")

	rootCmd.AddCommand(serveCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// bootstrap carrega a configuração, o logger e o snapshot de dados
func bootstrap() (*config.Config, *domain.Snapshot, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Setup(log.Options{
		Level:       cfg.App.LogLevel,
		Environment: cfg.App.Env,
	})

	snapshot, err := repository.NewSnapshotRepository(cfg.Data.SnapshotFile).Load()
	if err != nil {
		// Sobe mesmo sem dados; as rotas dependentes respondem DATA_001
		logrus.WithError(err).WithField("file", cfg.Data.SnapshotFile).Error("data: snapshot not loaded")
		snapshot = domain.EmptySnapshot()
	} else {
		logrus.WithFields(logrus.Fields{
			"file":      cfg.Data.SnapshotFile,
			"customers": len(snapshot.Customers()),
			"products":  len(snapshot.Products()),
			"purchases": len(snapshot.Purchases()),
		}).Info("data: snapshot loaded")
	}

	return cfg, snapshot, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, snapshot, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	competitorRepo := repository.NewCompetitorRepository(cfg.Data.CompetitorFile)
	outboxRepo := repository.NewOutboxRepository(cfg.Data.OutboxFile)

	analyzer := analyzing.NewService(snapshot)
	rankingService := ranking.NewCustomerRankingService(snapshot)
	generator := newGenerator(cfg)

	insightService := insighting.NewService(analyzer, snapshot, generator, cfg.Insight.Timeout)

	storefrontSource := storefront.NewStaticStorefront()
	designer := designing.NewService(storefrontSource, generator, cfg.Insight.Timeout)
	monitor := monitoring.NewService(storefrontSource)

	assistant := assisting.NewService(
		newClassifier(cfg),
		analyzer,
		rankingService,
		competitorRepo,
		designer,
		monitor,
		snapshot,
		generator,
		cfg.Insight.Timeout,
	)

	notifier := notifying.NewService(newMailer(cfg), outboxRepo)

	competitorSyncService := scheduler.NewCompetitorSyncService(scraper.NewStaticFeed(), competitorRepo, cfg)
	if err := competitorSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("scheduler: competitor sync failed to start")
	}

	server, err := api.New(cfg, api.Services{
		Snapshot:       snapshot,
		Analyzer:       analyzer,
		Insighter:      insightService,
		Ranking:        rankingService,
		Assistant:      assistant,
		Designer:       designer,
		Monitor:        monitor,
		Notifier:       notifier,
		Exporter:       report.NewExcelReport(analyzer, rankingService),
		Competitors:    competitorRepo,
		CompetitorSync: competitorSyncService,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

func runReport(_ *cobra.Command, _ []string) error {
	_, snapshot, err := bootstrap()
	if err != nil {
		return err
	}
	if !snapshot.Available() {
		return repository.ErrDataUnavailable
	}

	analyzer := analyzing.NewService(snapshot)
	exporter := report.NewExcelReport(analyzer, ranking.NewCustomerRankingService(snapshot))

	if err := exporter.Save(reportOut); err != nil {
		return err
	}

	logrus.WithField("file", reportOut).Info("report: workbook written")
	return nil
}

// newGenerator devolve nil quando o provedor escolhido não tem chave; as narrações ficam indisponíveis
func newGenerator(cfg *config.Config) insighting.Generator {
	provider := cfg.Insight.ResolveProvider()
	logger := logrus.WithField("provider", provider)

	switch provider {
	case config.ProviderGemini:
		if cfg.Insight.GeminiAPIKey == "" {
			logger.Warn("insights: GEMINI_API_KEY not set, AI narration disabled")
			return nil
		}
		logger.Info("insights: using gemini")
		return gemini.New(geminiclient.NewClient(cfg))
	case config.ProviderOpenAI:
		if cfg.Insight.OpenAIAPIKey == "" {
			logger.Warn("insights: OPENAI_API_KEY not set, AI narration disabled")
			return nil
		}
		logger.Info("insights: using openai")
		return openai.New(cfg, openai.NewClient(cfg))
	default:
		logger.Info("insights: using canned demo responses")
		return demo.New()
	}
}

func newClassifier(cfg *config.Config) assisting.Classifier {
	keyword := assisting.NewKeywordClassifier()
	if cfg.Insight.ResolveClassifier() != config.ClassifierLLM {
		return keyword
	}
	return assisting.NewFallbackClassifier(openai.NewClassifier(cfg, openai.NewClient(cfg)), keyword)
}

// newMailer devolve nil (interface) quando o SMTP não está configurado
func newMailer(cfg *config.Config) notifying.Mailer {
	if !cfg.SMTP.Configured() {
		logrus.Info("email: SMTP not configured, restock emails go to the outbox")
		return nil
	}
	return mailer.NewSMTPMailer(cfg.SMTP)
}
