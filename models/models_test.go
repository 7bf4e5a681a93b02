package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestMarketLeague(t *testing.T) {
	market := Market{
		"name":   "Winner",
		"league": "ENG1",
		"payoff": "1|19x0",
	}

	if market.League() != "ENG1" {
		t.Errorf("Expected league ENG1, got %s", market.League())
	}

	if market.Name() != "Winner" {
		t.Errorf("Expected name Winner, got %s", market.Name())
	}
}

func TestMarketMissingFields(t *testing.T) {
	market := Market{"payoff": "1|19x0"}

	if market.League() != "" {
		t.Errorf("Expected empty league, got %s", market.League())
	}

	if market.Name() != "" {
		t.Errorf("Expected empty name, got %s", market.Name())
	}
}

func TestMarketNonStringLeague(t *testing.T) {
	market := Market{"league": 42}

	if market.League() != "" {
		t.Errorf("Expected empty league for non-string value, got %s", market.League())
	}
}

func TestMarketRowTableName(t *testing.T) {
	var row MarketRow
	if row.TableName() != "markets" {
		t.Errorf("Expected table name markets, got %s", row.TableName())
	}
}

func TestLoadRun(t *testing.T) {
	run := LoadRun{
		ID:          uuid.New(),
		SourceFile:  "fixtures/markets.json",
		RecordCount: 42,
	}

	if run.ID == uuid.Nil {
		t.Error("Expected non-nil run ID")
	}

	if run.RecordCount != 42 {
		t.Errorf("Expected record count 42, got %d", run.RecordCount)
	}
}
