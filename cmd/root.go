package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "marketmerge",
	Short: "League Market Data Aggregation Toolkit",
	Long: `A CLI application for assembling league market datasets.
This tool fetches league results data, combines per-league market files
into a single labeled dataset, and can load the result into Postgres to
serve per-league statistics over a REST API.`,
}

func Execute() {
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.AddCommand(concatCMD)
	rootCMD.AddCommand(fetchCMD)
	rootCMD.AddCommand(loadCMD)
	rootCMD.AddCommand(serverCMD)
}
