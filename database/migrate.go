package database

import (
	"fmt"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs schema migration for every model. The uuid-ossp extension
// backs the uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Category{},
		&models.Service{},
		&models.Card{},
		&models.Subscription{},
		&models.Transaction{},
		&models.Vote{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
