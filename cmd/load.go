package cmd

import (
	"log"

	"github.com/oddsfeed/marketmerge/concat"
	"github.com/oddsfeed/marketmerge/database"
	"github.com/spf13/cobra"
)

var loadCMD = &cobra.Command{
	Use:   "load",
	Short: "Load the combined markets dataset into Postgres",
	Long: `Reads fixtures/markets.json and replaces the markets table with
its records, one row per market. Each load is recorded as a run with its
record count.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Initializing database...")
		if err := database.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		run, err := database.LoadMarkets(database.DB, concat.OutputFile)
		if err != nil {
			log.Fatalf("Failed to load markets: %v", err)
		}

		log.Printf("Load run %s complete: %d markets loaded from %s",
			run.ID, run.RecordCount, run.SourceFile)
	},
}
