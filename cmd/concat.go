package cmd

import (
	"log"

	"github.com/oddsfeed/marketmerge/concat"
	"github.com/spf13/cobra"
)

var concatCMD = &cobra.Command{
	Use:   "concat",
	Short: "Combine per-league market files into a single dataset",
	Long: `Reads every <LEAGUE>-markets.json file under core-data, tags each
record with the league derived from its filename, and writes the combined
list to fixtures/markets.json. Files that fail to parse are skipped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		processor := concat.NewProcessor()

		if _, err := processor.Run(concat.CoreDataDir, concat.OutputFile); err != nil {
			log.Fatalf("Failed to combine market files: %v", err)
		}
	},
}
