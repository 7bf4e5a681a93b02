package database

import (
	"fmt"

	"gorm.io/gorm"
)

// OptimizeIndexes creates the indexes the summary queries rely on.
func OptimizeIndexes(db *gorm.DB) error {
	// League-first composite index serves both the per-league listing and
	// the grouped summary.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_markets_league_name
		ON markets (league, name)
	`).Error; err != nil {
		return fmt.Errorf("failed to create markets league index: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_load_runs_created
		ON load_runs (created_at DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create load runs index: %w", err)
	}

	fmt.Println("Database indexes optimized successfully")
	return nil
}
