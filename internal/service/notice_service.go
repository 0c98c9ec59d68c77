package service

import (
	"time"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// NoticeInput is the create/replace payload of a notice
type NoticeInput struct {
	SocietyID   uint       `json:"societyId" form:"societyId" binding:"required" example:"1"`
	Title       string     `json:"title" form:"title" binding:"required,min=3,max=150" example:"Water supply interruption"`
	Content     string     `json:"content" form:"content" binding:"required,min=10,max=5000" example:"Water supply will be off on Sunday 10am-2pm."`
	Category    string     `json:"category" form:"category" binding:"required,oneof=general maintenance event emergency" example:"maintenance"`
	IsPinned    bool       `json:"isPinned" form:"isPinned" example:"false"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" form:"publishedAt" time_format:"2006-01-02T15:04:05Z07:00"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" form:"expiresAt" time_format:"2006-01-02T15:04:05Z07:00"`
}

// NoticeService defines the notice operations of the panel
type NoticeService interface {
	ResourceService[models.Notice, NoticeInput]
}

// NewNoticeService creates a new notice service
func NewNoticeService(repo repository.NoticeRepository, logger *logger.Logger) NoticeService {
	return &resourceService[models.Notice, NoticeInput]{
		name:     "notice",
		repo:     repo,
		validate: validateNotice,
		logger:   logger,
	}
}

func validateNotice(input *NoticeInput) error {
	if input.PublishedAt != nil && input.ExpiresAt != nil && !input.ExpiresAt.After(*input.PublishedAt) {
		return newValidationError("expiresAt", "must be after publishedAt")
	}
	return nil
}
