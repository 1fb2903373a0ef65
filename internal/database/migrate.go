package database

import (
	"fmt"

	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the catalog tables.
func RunMigrations(db *gorm.DB) error {
	logger.Info("running auto-migration", "dialect", db.Dialector.Name())
	if err := db.AutoMigrate(&models.RecipeRecord{}, &models.IngredientRecord{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}
