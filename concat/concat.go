package concat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oddsfeed/marketmerge/models"
)

// Fixed paths: the aggregation has no configuration surface.
const (
	CoreDataDir  = "core-data"
	OutputFile   = "fixtures/markets.json"
	marketSuffix = "-markets.json"
)

// Result reports what one aggregation pass produced.
type Result struct {
	Markets      []models.Market
	LeagueCounts map[string]int
	FilesSeen    int
	FilesSkipped int
}

type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Run combines every <LEAGUE>-markets.json file under dataDir into a single
// JSON array at outFile, tagging each record with its league. Files that fail
// to read or parse are logged and skipped; only a failure to write the
// combined output is returned as an error.
func (p *Processor) Run(dataDir, outFile string) (*Result, error) {
	files, err := filepath.Glob(filepath.Join(dataDir, "*"+marketSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to find market files: %w", err)
	}

	// Lexicographic order keeps the combined output deterministic.
	sort.Strings(files)

	result := &Result{
		Markets:      make([]models.Market, 0),
		LeagueCounts: make(map[string]int),
	}

	for _, path := range files {
		filename := filepath.Base(path)
		league := strings.TrimSuffix(filename, marketSuffix)
		result.FilesSeen++

		fmt.Printf("Processing %s (league: %s)\n", filename, league)

		markets, err := readMarketFile(path)
		if err != nil {
			fmt.Printf("  Error processing %s: %v\n", path, err)
			result.FilesSkipped++
			continue
		}

		for _, market := range markets {
			market["league"] = league
			result.Markets = append(result.Markets, market)
		}

		if len(markets) > 0 {
			result.LeagueCounts[league] += len(markets)
		}

		fmt.Printf("  Added %d markets for %s\n", len(markets), league)
	}

	fmt.Printf("\nSaving %d total markets to %s\n", len(result.Markets), outFile)

	if err := writeCombined(outFile, result.Markets); err != nil {
		return nil, err
	}

	fmt.Println("Markets concatenation complete")

	printSummary(result.LeagueCounts)

	return result, nil
}

func readMarketFile(path string) ([]models.Market, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var markets []models.Market
	if err := json.Unmarshal(data, &markets); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	// A null array element decodes to a nil map; treat it like malformed
	// JSON so the whole file is skipped rather than panicking on label
	// injection.
	for i, market := range markets {
		if market == nil {
			return nil, fmt.Errorf("failed to parse file: record %d is not an object", i)
		}
	}

	return markets, nil
}

func writeCombined(outFile string, markets []models.Market) error {
	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(markets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal combined markets: %w", err)
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}

	return nil
}

func printSummary(counts map[string]int) {
	fmt.Println("\nSummary by league:")

	leagues := make([]string, 0, len(counts))
	for league := range counts {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)

	for _, league := range leagues {
		fmt.Printf("  %s: %d markets\n", league, counts[league])
	}
}
