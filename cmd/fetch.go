package cmd

import (
	"log"

	"github.com/oddsfeed/marketmerge/concat"
	"github.com/oddsfeed/marketmerge/fetch"
	"github.com/spf13/cobra"
)

var fetchCMD = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch league results data from football-data.co.uk",
	Long: `Downloads full-time results for the English leagues across the
configured seasons and writes one <LEAGUE>-events.json file per league
under core-data. Failed league-seasons are skipped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fetcher := fetch.NewFetcher()

		log.Printf("Fetching league events into %s", concat.CoreDataDir)

		for _, league := range fetch.EnglandLeagues {
			log.Printf("Fetching %s (%s)...", league.Code, league.FootballDataID)

			events, err := fetcher.FetchLeague(league)
			if err != nil {
				log.Printf("Error fetching %s: %v", league.Code, err)
				continue
			}

			if err := fetch.WriteLeagueEvents(concat.CoreDataDir, league.Code, events); err != nil {
				log.Fatalf("Failed to write events for %s: %v", league.Code, err)
			}

			log.Printf("Wrote %d events for %s", len(events), league.Code)
		}
	},
}
