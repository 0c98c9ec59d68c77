package repository

import (
	"society-admin-svc/internal/models"

	"gorm.io/gorm"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	CreateSchedulerLog(log *models.SchedulerLog) error
	GetRecentSchedulerLogs(code string, limit int) ([]models.SchedulerLog, error)
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// CreateSchedulerLog creates a new scheduler log record
func (r *schedulerLogRepository) CreateSchedulerLog(log *models.SchedulerLog) error {
	return r.db.Create(log).Error
}

// GetRecentSchedulerLogs returns the newest logs of one scheduler, newest first
func (r *schedulerLogRepository) GetRecentSchedulerLogs(code string, limit int) ([]models.SchedulerLog, error) {
	if limit <= 0 {
		limit = 20
	}

	var logs []models.SchedulerLog
	err := r.db.Where("scheduler_code = ?", code).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
