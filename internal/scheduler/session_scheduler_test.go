package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubPurger struct {
	removed int64
	err     error
	runs    atomic.Int32
}

func (p *stubPurger) Purge(context.Context) (int64, error) {
	p.runs.Add(1)
	return p.removed, p.err
}

func newLogRepo(t *testing.T) repository.SchedulerLogRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.SchedulerLog{}))
	return repository.NewSchedulerLogRepository(db)
}

func statuses(logs []models.SchedulerLog) []string {
	out := make([]string, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		out = append(out, logs[i].Status)
	}
	return out
}

func TestSessionScheduler_RunOnceSuccess(t *testing.T) {
	repo := newLogRepo(t)
	purger := &stubPurger{removed: 3}
	s := NewSessionScheduler(purger, repo, logger.NewNopLogger(), "0 */15 * * * *")

	removed, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	logs, err := repo.GetRecentSchedulerLogs(SessionPurgeCode, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SchedulerStatusStart, models.SchedulerStatusRunning, models.SchedulerStatusSuccess}, statuses(logs))
	assert.Equal(t, logs[0].RunID, logs[2].RunID)
	assert.Contains(t, logs[0].Message, "Purged 3")
}

func TestSessionScheduler_RunOnceFailure(t *testing.T) {
	repo := newLogRepo(t)
	purger := &stubPurger{err: errors.New("redis unavailable")}
	s := NewSessionScheduler(purger, repo, logger.NewNopLogger(), "0 */15 * * * *")

	_, err := s.RunOnce(context.Background())
	require.Error(t, err)

	logs, err := repo.GetRecentSchedulerLogs(SessionPurgeCode, 10)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, models.SchedulerStatusFailed, logs[0].Status)
	assert.Contains(t, logs[0].Message, "redis unavailable")
}

func TestSessionScheduler_WithoutLogRepository(t *testing.T) {
	s := NewSessionScheduler(&stubPurger{removed: 1}, nil, logger.NewNopLogger(), "0 */15 * * * *")
	removed, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = s.RecentRuns(10)
	assert.ErrorIs(t, err, ErrNoRunLog)
}

func TestSessionScheduler_RecentRuns(t *testing.T) {
	repo := newLogRepo(t)
	s := NewSessionScheduler(&stubPurger{removed: 2}, repo, logger.NewNopLogger(), "0 */15 * * * *")

	_, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	runs, err := s.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, models.SchedulerStatusSuccess, runs[0].Status)
	assert.Equal(t, models.SchedulerStatusRunning, runs[1].Status)
}

func TestSessionScheduler_StartRunsJob(t *testing.T) {
	purger := &stubPurger{}
	s := NewSessionScheduler(purger, nil, logger.NewNopLogger(), "* * * * * *")
	require.NoError(t, s.Start())

	assert.Eventually(t, func() bool { return purger.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()
}

func TestSessionScheduler_InvalidExpression(t *testing.T) {
	s := NewSessionScheduler(&stubPurger{}, nil, logger.NewNopLogger(), "not a cron")
	assert.Error(t, s.Start())
}
