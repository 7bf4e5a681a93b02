package fetch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/oddsfeed/marketmerge/models"
)

const (
	defaultBaseURL = "https://www.football-data.co.uk/mmz4281"
	eventsSuffix   = "-events.json"
	maxRetries     = 3
)

// LeagueConfig maps a league code to its football-data.co.uk identifier and
// the season range to fetch.
type LeagueConfig struct {
	Code           string
	FootballDataID string
	StartYear      int
	EndYear        int
}

// EnglandLeagues covers the four English divisions, seasons 2015-16 to 2024-25.
var EnglandLeagues = []LeagueConfig{
	{Code: "ENG1", FootballDataID: "E0", StartYear: 2015, EndYear: 2024},
	{Code: "ENG2", FootballDataID: "E1", StartYear: 2015, EndYear: 2024},
	{Code: "ENG3", FootballDataID: "E2", StartYear: 2015, EndYear: 2024},
	{Code: "ENG4", FootballDataID: "E3", StartYear: 2015, EndYear: 2024},
}

type Fetcher struct {
	client  *http.Client
	baseURL string
	delay   time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		delay:   time.Second,
	}
}

// FetchLeague downloads every configured season for one league and returns
// the concatenated match results. A season that fails after retries is
// logged by the caller via the returned count; individual seasons are
// skipped, not fatal.
func (f *Fetcher) FetchLeague(league LeagueConfig) ([]models.MatchResult, error) {
	var events []models.MatchResult

	for year := league.StartYear; year <= league.EndYear; year++ {
		season := fmt.Sprintf("%02d%02d", year%100, (year+1)%100)

		seasonEvents, err := f.fetchSeason(league, season)
		if err != nil {
			fmt.Printf("  Error fetching %s season %s: %v\n", league.Code, season, err)
			continue
		}

		events = append(events, seasonEvents...)
		fmt.Printf("  Season %s: %d events for %s\n", season, len(seasonEvents), league.Code)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no events fetched for league %s", league.Code)
	}

	return events, nil
}

// fetchSeason downloads and parses one league-season CSV, retrying network
// errors and HTTP 503 with exponential backoff.
func (f *Fetcher) fetchSeason(league LeagueConfig, season string) ([]models.MatchResult, error) {
	url := fmt.Sprintf("%s/%s/%s.csv", f.baseURL, season, league.FootballDataID)

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(2<<uint(attempt-1)) * f.delay)
		} else {
			// Pace requests against the upstream host.
			time.Sleep(f.delay)
		}

		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "text/csv,text/plain,*/*")

		resp, err := f.client.Do(req)
		if err != nil {
			if attempt < maxRetries-1 {
				continue
			}
			return nil, fmt.Errorf("request failed: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			events, err := parseEventsCSV(resp.Body, league.Code, season)
			resp.Body.Close()
			return events, err
		}

		resp.Body.Close()

		if resp.StatusCode == http.StatusServiceUnavailable && attempt < maxRetries-1 {
			continue
		}

		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, url)
	}

	return nil, fmt.Errorf("retries exhausted for %s", url)
}

// parseEventsCSV converts the football-data.co.uk CSV format into match
// results. Rows missing required fields are skipped.
func parseEventsCSV(reader io.Reader, leagueCode, season string) ([]models.MatchResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV")
	}

	header := records[0]
	dateCol := findColumn(header, "Date")
	homeTeamCol := findColumn(header, "HomeTeam")
	awayTeamCol := findColumn(header, "AwayTeam")
	homeGoalsCol := findColumn(header, "FTHG")
	awayGoalsCol := findColumn(header, "FTAG")

	if dateCol == -1 || homeTeamCol == -1 || awayTeamCol == -1 || homeGoalsCol == -1 || awayGoalsCol == -1 {
		return nil, fmt.Errorf("required columns not found in CSV header")
	}

	minFields := max(dateCol, homeTeamCol, awayTeamCol, homeGoalsCol, awayGoalsCol) + 1

	var events []models.MatchResult

	for _, record := range records[1:] {
		if len(record) < minFields {
			continue
		}

		dateStr := strings.TrimSpace(record[dateCol])
		if dateStr == "" {
			continue
		}

		date, err := parseDate(dateStr)
		if err != nil {
			continue
		}

		homeTeam := strings.TrimSpace(record[homeTeamCol])
		awayTeam := strings.TrimSpace(record[awayTeamCol])
		if homeTeam == "" || awayTeam == "" {
			continue
		}

		homeGoals, err := strconv.Atoi(strings.TrimSpace(record[homeGoalsCol]))
		if err != nil {
			continue
		}

		awayGoals, err := strconv.Atoi(strings.TrimSpace(record[awayGoalsCol]))
		if err != nil {
			continue
		}

		events = append(events, models.MatchResult{
			Date:      date.Format("2006-01-02"),
			Season:    season,
			League:    leagueCode,
			HomeTeam:  homeTeam,
			AwayTeam:  awayTeam,
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
		})
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no valid events parsed from CSV")
	}

	return events, nil
}

// parseDate handles the date layouts football-data.co.uk uses.
func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"02/01/06",
		"2/1/06",
		"02/01/2006",
		"2/1/2006",
	}

	for _, format := range formats {
		if date, err := time.Parse(format, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

func findColumn(header []string, columnName string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), columnName) {
			return i
		}
	}
	return -1
}

// WriteLeagueEvents writes one league's events to dataDir/<code>-events.json.
func WriteLeagueEvents(dataDir, code string, events []models.MatchResult) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	path := filepath.Join(dataDir, code+eventsSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
