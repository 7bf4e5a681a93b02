package database

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/oddsfeed/marketmerge/models"
	"gorm.io/gorm"
)

const loadBatchSize = 500

// LoadMarkets replaces the markets table contents with the records in the
// combined markets file and records a bookkeeping row for the run.
func LoadMarkets(db *gorm.DB, path string) (*models.LoadRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var markets []models.Market
	if err := json.Unmarshal(data, &markets); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	rows, err := buildRows(markets)
	if err != nil {
		return nil, err
	}

	run := &models.LoadRun{
		ID:          uuid.New(),
		SourceFile:  path,
		RecordCount: len(rows),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM markets").Error; err != nil {
			return fmt.Errorf("failed to clear markets: %w", err)
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, loadBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert markets: %w", err)
			}
		}
		return tx.Create(run).Error
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

func buildRows(markets []models.Market) ([]models.MarketRow, error) {
	rows := make([]models.MarketRow, 0, len(markets))

	for i, market := range markets {
		payload, err := json.Marshal(market)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal record %d: %w", i, err)
		}

		rows = append(rows, models.MarketRow{
			League:  market.League(),
			Name:    market.Name(),
			Payload: string(payload),
		})
	}

	return rows, nil
}
