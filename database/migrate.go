package database

import (
	"fmt"

	"monprof_backend/internal/config"
	"monprof_backend/internal/logger"
	"monprof_backend/internal/models"
	"monprof_backend/internal/models/messaging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens GORM with the configured database URL.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model. Messaging tables live in their own
// schema, so it is created first, as is the uuid extension the id
// defaults rely on.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}
	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS messaging`).Error; err != nil {
		return fmt.Errorf("failed to create messaging schema: %w", err)
	}

	err := db.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Quartier{},
		&models.User{},
		&models.RefreshToken{},
		&models.TutorProfile{},
		&models.ParentProfile{},
		&models.CourseRequest{},
		&models.ContactUnlock{},
		&models.Review{},
		&models.Subject{},
		&models.Level{},
		&models.Category{},
		&models.Article{},
		&models.Comment{},
		&messaging.Thread{},
		&messaging.Message{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
