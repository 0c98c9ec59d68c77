package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-admin-svc/internal/config"
	"society-admin-svc/internal/models"
)

// Database wraps the gorm connection of the service
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to PostgreSQL
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return Open(postgres.Open(cfg.GetDSN()))
}

// Open connects with any gorm dialector and configures the connection pool
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Database{DB: db}, nil
}

// AutoMigrate creates the session and scheduler tables
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.SessionEntry{},
		&models.SchedulerLog{},
	)
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
