package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	scrapermocks "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/scraper/mocks"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var records = []domain.CompetitorRecord{
	{ProductName: "Rival Mouse", Price: 24.99},
	{ProductName: "Rival Keyboard", Price: 79.5},
}

func newTestService(t *testing.T, enabled bool, cron string) (*CompetitorSyncService, *scrapermocks.MockCompetitorFeed, *mocks.MockCompetitorRepository) {
	ctrl := gomock.NewController(t)
	feed := scrapermocks.NewMockCompetitorFeed(ctrl)
	repo := mocks.NewMockCompetitorRepository(ctrl)

	cfg := &config.Config{
		CompetitorSync: config.CompetitorSync{CronSchedule: cron, Enabled: enabled},
	}

	return NewCompetitorSyncService(feed, repo, cfg), feed, repo
}

func TestSyncCompetitors(t *testing.T) {
	service, feed, repo := newTestService(t, false, "0 */6 * * *")

	feed.EXPECT().Fetch(gomock.Any()).Return(records, nil)
	repo.EXPECT().Save(records).Return(nil)
	repo.EXPECT().Path().Return("data/competitor_data.json").AnyTimes()

	result, err := service.SyncCompetitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, result)

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sync_records"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "data/competitor_data.json", status["output_file"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncCompetitors_FeedError(t *testing.T) {
	service, feed, repo := newTestService(t, false, "0 */6 * * *")

	feed.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("feed down"))
	repo.EXPECT().Save(gomock.Any()).Times(0)
	repo.EXPECT().Path().Return("out.json").AnyTimes()

	_, err := service.SyncCompetitors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed down")

	status := service.GetStatus()
	assert.Contains(t, status["last_sync_error"], "feed down")
	assert.Equal(t, 0, status["last_sync_records"])
}

func TestSyncCompetitors_SaveError(t *testing.T) {
	service, feed, repo := newTestService(t, false, "0 */6 * * *")

	feed.EXPECT().Fetch(gomock.Any()).Return(records, nil)
	repo.EXPECT().Save(records).Return(errors.New("disk full"))

	_, err := service.SyncCompetitors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSyncCompetitors_AlreadyRunning(t *testing.T) {
	service, _, _ := newTestService(t, false, "0 */6 * * *")
	service.syncRunning = true

	_, err := service.SyncCompetitors(context.Background())
	assert.ErrorIs(t, err, ErrSyncRunning)
}

func TestStart(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		service, _, _ := newTestService(t, false, "invalid")
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		service, _, _ := newTestService(t, true, "not a cron")
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("habilitado agenda e para com o contexto", func(t *testing.T) {
		service, _, _ := newTestService(t, true, "0 */6 * * *")

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}

func TestTriggerManualSync(t *testing.T) {
	service, feed, repo := newTestService(t, false, "0 */6 * * *")

	done := make(chan struct{})
	feed.EXPECT().Fetch(gomock.Any()).Return(records, nil)
	repo.EXPECT().Path().Return("out.json").AnyTimes()
	repo.EXPECT().Save(records).DoAndReturn(func([]domain.CompetitorRecord) error {
		close(done)
		return nil
	})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manual sync did not run")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_sync_records"] == 2
	}, time.Second, 10*time.Millisecond)
}
