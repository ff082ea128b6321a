package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/api/handler"
	"github.com/vfg2006/commerce-insights-api/internal/api/handler/router"
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
	"github.com/vfg2006/commerce-insights-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Snapshot       *domain.Snapshot
	Analyzer       analyzing.Analyzer
	Insighter      insighting.Insighter
	Ranking        ranking.RankingService
	Assistant      assisting.Assistant
	Designer       designing.Designer
	Monitor        monitoring.Monitor
	Notifier       notifying.Notifier
	Exporter       report.Exporter
	Competitors    repository.CompetitorRepository
	CompetitorSync *scheduler.CompetitorSyncService
}

// Handler monta o router com todas as rotas e a cadeia global de middlewares
func Handler(cfg *config.Config, services Services) http.Handler {
	// ponteiros nulos não podem virar interfaces não nulas
	var cronServices handler.CronJobServices
	var syncer handler.CompetitorSyncer
	if services.CompetitorSync != nil {
		cronServices.CompetitorSync = services.CompetitorSync
		syncer = services.CompetitorSync
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Snapshot)...),
		router.WithRoutes(handler.Catalog(services.Snapshot, services.Competitors)...),
		router.WithRoutes(handler.Analytics(services.Snapshot, services.Analyzer, services.Insighter)...),
		router.WithRoutes(handler.Reports(services.Snapshot, services.Exporter)...),
		router.WithRoutes(handler.Market(services.Snapshot, services.Insighter, services.Competitors, syncer)...),
		router.WithRoutes(handler.Loyalty(services.Snapshot, services.Ranking)...),
		router.WithRoutes(handler.Storefront(services.Designer, services.Monitor)...),
		router.WithRoutes(handler.Email(services.Notifier)...),
		router.WithRoutes(handler.Assistant(services.Assistant)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Snapshot == nil || services.CompetitorSync == nil {
		return nil, fmt.Errorf("api: snapshot and competitor sync are required")
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           Handler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("server: graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
