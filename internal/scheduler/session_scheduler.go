package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// SessionPurgeCode identifies the purge job in scheduler_logs
const SessionPurgeCode = "SESSION_PURGE"

// ErrNoRunLog is returned by RecentRuns when no scheduler log repository is configured
var ErrNoRunLog = errors.New("scheduler runs are not recorded")

// purgeTimeout bounds one purge run
const purgeTimeout = time.Minute

// Purger removes expired session entries
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// SessionScheduler periodically purges expired panel sessions
type SessionScheduler struct {
	purger         Purger
	logRepo        repository.SchedulerLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
}

// NewSessionScheduler creates a new session scheduler. logRepo may be nil when no
// database is configured; runs are then only written to the application log.
func NewSessionScheduler(purger Purger, logRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *SessionScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &SessionScheduler{
		purger:         purger,
		logRepo:        logRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
	}
}

// Start schedules the purge job and starts the cron runner
func (s *SessionScheduler) Start() error {
	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling session purge job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.purgeExpiredSessions); err != nil {
		return fmt.Errorf("failed to schedule session purge job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Session scheduler started successfully")
	return nil
}

// Stop waits for a running job to finish and stops the scheduler
func (s *SessionScheduler) Stop() {
	s.logger.Info("Stopping session scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Session scheduler stopped successfully")
}

// RunOnce purges expired sessions immediately and returns how many entries were removed
func (s *SessionScheduler) RunOnce(ctx context.Context) (int64, error) {
	runID := uuid.NewString()
	s.logRun(runID, "Starting session purge", models.SchedulerStatusStart)

	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	s.logRun(runID, "Purging expired session entries", models.SchedulerStatusRunning)
	removed, err := s.purger.Purge(ctx)
	if err != nil {
		s.logRun(runID, fmt.Sprintf("Failed to purge sessions: %v", err), models.SchedulerStatusFailed)
		s.logger.WithError(err).Error("Failed to purge expired sessions")
		return 0, err
	}

	s.logRun(runID, fmt.Sprintf("Purged %d expired session entries", removed), models.SchedulerStatusSuccess)
	s.logger.WithField("removed", removed).Info("Expired sessions purged")
	return removed, nil
}

// RecentRuns returns the newest log rows of the purge job, newest first
func (s *SessionScheduler) RecentRuns(limit int) ([]models.SchedulerLog, error) {
	if s.logRepo == nil {
		return nil, ErrNoRunLog
	}
	return s.logRepo.GetRecentSchedulerLogs(SessionPurgeCode, limit)
}

func (s *SessionScheduler) purgeExpiredSessions() {
	_, _ = s.RunOnce(context.Background())
}

// logRun writes one status row of a run
func (s *SessionScheduler) logRun(runID, message, status string) {
	if s.logRepo == nil {
		return
	}

	entry := &models.SchedulerLog{
		RunID:         runID,
		SchedulerCode: SessionPurgeCode,
		Message:       message,
		Status:        status,
	}
	if err := s.logRepo.CreateSchedulerLog(entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithFields(map[string]interface{}{"status": status, "run_id": runID}).Debug("Scheduler log entry created")
}
