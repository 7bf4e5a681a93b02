package cmd

import (
	"log"

	"github.com/oddsfeed/marketmerge/api"
	"github.com/oddsfeed/marketmerge/database"
	"github.com/spf13/cobra"
)

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Starts the HTTP API serving the loaded markets: per-league market
listings and a per-league count summary. Run the load command first to
populate the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Initializing database...")
		if err := database.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		r := api.SetupRoutes()

		port := ":8080"
		log.Printf("Starting server on port %s", port)
		if err := r.Run(port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}
