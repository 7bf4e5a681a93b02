package database

import (
	"encoding/json"
	"testing"

	"github.com/oddsfeed/marketmerge/models"
)

func TestBuildRows(t *testing.T) {
	markets := []models.Market{
		{"name": "Winner", "league": "ENG1", "payoff": "1|19x0"},
		{"name": "Relegation", "league": "ENG2"},
	}

	rows, err := buildRows(markets)
	if err != nil {
		t.Fatalf("Failed to build rows: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].League != "ENG1" || rows[0].Name != "Winner" {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}

	var payload models.Market
	if err := json.Unmarshal([]byte(rows[0].Payload), &payload); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}
	if payload["payoff"] != "1|19x0" {
		t.Errorf("Expected payoff preserved in payload, got %v", payload["payoff"])
	}
}

func TestBuildRowsEmpty(t *testing.T) {
	rows, err := buildRows(nil)
	if err != nil {
		t.Fatalf("Failed to build rows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}

func TestBuildRowsMissingFields(t *testing.T) {
	rows, err := buildRows([]models.Market{{"id": 1.0}})
	if err != nil {
		t.Fatalf("Failed to build rows: %v", err)
	}

	if rows[0].League != "" || rows[0].Name != "" {
		t.Errorf("Expected empty league and name, got %+v", rows[0])
	}
}
