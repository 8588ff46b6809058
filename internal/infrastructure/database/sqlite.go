package database

import (
	"fmt"

	"health-appointments/config"
	"health-appointments/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteConnection opens the embedded file store and creates the schema
// idempotently. Pass ":memory:" as the path for an isolated throwaway store.
func NewSQLiteConnection(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		// gorm's default logger writes to stdout, which carries tool results
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// single connection: sqlite allows one writer, and an in-memory store
	// vanishes when its connection is dropped
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&entity.Doctor{}, &entity.Appointment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logrus.Infof("SQLite store ready at %s", cfg.Path)

	return db, nil
}
