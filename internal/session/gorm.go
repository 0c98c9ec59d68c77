package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"society-admin-svc/internal/models"
)

// GormStore keeps sessions in the session_entries table
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore creates a store on top of db. The table must already be migrated.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	var entry models.SessionEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND entry_key = ? AND expires_at > ?", sessionID, key, s.now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session entry: %w", err)
	}
	return entry.Value, nil
}

func (s *GormStore) Set(ctx context.Context, sessionID, key, value string, ttl time.Duration) error {
	now := s.now()
	entry := &models.SessionEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
		ExpiresAt: expiresAt(now, ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to save session entry: %w", err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND entry_key IN ?", sessionID, keys).
		Delete(&models.SessionEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session entries: %w", err)
	}
	return nil
}

func (s *GormStore) Purge(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&models.SessionEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge session entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
