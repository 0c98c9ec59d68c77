package session

import (
	"fmt"

	"gorm.io/gorm"

	"society-admin-svc/internal/config"
)

// Open builds the store selected by cfg.Session.Driver. db is required for the
// postgres driver only. The returned close function releases driver resources.
func Open(cfg *config.Config, db *gorm.DB) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Session.Driver {
	case config.SessionDriverMemory:
		return NewMemoryStore(), noop, nil
	case config.SessionDriverFile:
		return NewFileStore(cfg.Session.FilePath), noop, nil
	case config.SessionDriverPostgres:
		if db == nil {
			return nil, nil, fmt.Errorf("session driver %q requires a database connection", cfg.Session.Driver)
		}
		return NewGormStore(db), noop, nil
	case config.SessionDriverRedis:
		rdb, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb, ""), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}
