package models

import "time"

// SessionEntry is one persisted key of a panel session
type SessionEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SessionID string    `json:"session_id" gorm:"column:session_id;size:64;not null;uniqueIndex:idx_session_entries_sid_key"`
	Key       string    `json:"key" gorm:"column:entry_key;size:64;not null;uniqueIndex:idx_session_entries_sid_key"`
	Value     string    `json:"value" gorm:"column:value;type:text"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for SessionEntry
func (SessionEntry) TableName() string {
	return "session_entries"
}
