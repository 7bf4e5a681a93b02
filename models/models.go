package models

import (
	"time"

	"github.com/google/uuid"
)

// Market is one market record as read from a per-league file. Upstream
// producers define the schema, so the record stays an open JSON object.
type Market map[string]interface{}

// League returns the league label carried by the record, or "" when the
// field is absent or not a string.
func (m Market) League() string {
	league, _ := m["league"].(string)
	return league
}

// Name returns the market name, or "" when absent.
func (m Market) Name() string {
	name, _ := m["name"].(string)
	return name
}

// MarketRow is the stored form of one combined market record.
type MarketRow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	League    string    `gorm:"index:idx_league_name;size:20" json:"league"`
	Name      string    `gorm:"index:idx_league_name;size:100" json:"name"`
	Payload   string    `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

func (MarketRow) TableName() string {
	return "markets"
}

// LoadRun records one load of the combined markets file into the database.
type LoadRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceFile  string    `gorm:"size:255" json:"source_file"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeagueCount is one line of the per-league summary served by the API.
type LeagueCount struct {
	League string `json:"league"`
	Count  int64  `json:"count"`
}

// MatchResult is one full-time result fetched from football-data.co.uk.
type MatchResult struct {
	Date      string `json:"date"`
	Season    string `json:"season"`
	League    string `json:"league"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}
