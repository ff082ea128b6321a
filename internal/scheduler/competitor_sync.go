// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var ErrSyncRunning = errors.New("competitor sync already running")

type CompetitorSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type CompetitorSyncService struct {
	scheduler           *gocron.Scheduler
	feed                scraper.CompetitorFeed
	repo                repository.CompetitorRepository
	config              CompetitorSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRecords     int
	lastSyncError       string
}

func NewCompetitorSyncService(
	feed scraper.CompetitorFeed,
	repo repository.CompetitorRepository,
	cfg *config.Config,
) *CompetitorSyncService {
	syncConfig := CompetitorSyncConfig{
		CronSchedule: cfg.CompetitorSync.CronSchedule, // Default: a cada 6 horas
		SyncEnabled:  cfg.CompetitorSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("scheduler: competitor sync configuration loaded")

	return &CompetitorSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		feed:      feed,
		repo:      repo,
		config:    syncConfig,
	}
}

func (s *CompetitorSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: competitor sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting competitor sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncCompetitors(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("scheduler: scheduled competitor sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule competitor sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping competitor sync")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncCompetitors busca os preços no feed e regrava o arquivo de concorrentes
func (s *CompetitorSyncService) SyncCompetitors(ctx context.Context) ([]domain.CompetitorRecord, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("scheduler: competitor sync already running")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	records, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncRecords = len(records)
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return records, err
}

func (s *CompetitorSyncService) sync(ctx context.Context) ([]domain.CompetitorRecord, error) {
	records, err := s.feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch competitor prices: %w", err)
	}

	if err := s.repo.Save(records); err != nil {
		return nil, fmt.Errorf("failed to save competitor prices: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"path":    s.repo.Path(),
	}).Info("scheduler: competitor prices saved")

	return records, nil
}

// TriggerManualSync dispara a sincronização em background
func (s *CompetitorSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: competitor sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: starting manual competitor sync")
	go func() {
		if _, err := s.SyncCompetitors(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("scheduler: manual competitor sync failed")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CompetitorSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"output_file":            s.repo.Path(),
		"last_sync_records":      s.lastSyncRecords,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
