package models

import "time"

// Notice categories
const (
	NoticeCategoryGeneral     = "general"
	NoticeCategoryMaintenance = "maintenance"
	NoticeCategoryEvent       = "event"
	NoticeCategoryEmergency   = "emergency"
)

// Notice is an announcement published to the residents of a society
type Notice struct {
	ID            uint       `json:"id" example:"1"`
	SocietyID     uint       `json:"societyId" example:"1"`
	Title         string     `json:"title" example:"Water supply interruption"`
	Content       string     `json:"content" example:"Water supply will be off on Sunday 10am-2pm."`
	Category      string     `json:"category" example:"maintenance"`
	AttachmentURL string     `json:"attachment,omitempty"`
	IsPinned      bool       `json:"isPinned" example:"false"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}
