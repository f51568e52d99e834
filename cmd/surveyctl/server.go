package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/odmforest/treesurvey/pkg/config"
	"github.com/odmforest/treesurvey/pkg/db"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the tree survey application server",
	Long: `Run the tree survey application server.

Requires the DATABASE_URL environment variable pointing at a
PostGIS-enabled PostgreSQL database.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			stop, err := config.Watch()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to watch config: %v\n", err)
				os.Exit(1)
			}
			defer stop()
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, host, port, cfg.CORSOrigins)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", config.Get().Port, "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", config.Get().BindAddress, "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
