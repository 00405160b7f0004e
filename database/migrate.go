package database

import (
	"fmt"

	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Title{},
		&models.Review{},
		&models.Comment{},
	}
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
