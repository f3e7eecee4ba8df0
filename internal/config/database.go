package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"ecomap/internal/logger"
	"ecomap/internal/models"
)

// Connect opens the Postgres connection described by cfg and migrates the
// schema. TranslateError turns driver unique-violation errors into
// gorm.ErrDuplicatedKey so handlers can map them to conflict responses
// without inspecting driver types.
func Connect(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlog.New(logger.GormLogger(), gormlog.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      gormlog.Warn,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Report{}, &models.Vote{}, &models.Comment{}); err != nil {
		return nil, fmt.Errorf("auto-migration: %w", err)
	}

	return db, nil
}
