package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/odmforest/treesurvey/pkg/config"
	"github.com/odmforest/treesurvey/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Tree survey backend server and tooling",
	Long:  `surveyctl runs the tree survey REST backend and manages its database schema.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; real deployments set the environment directly.
		// Reload picks up anything the .env file added.
		_ = godotenv.Load()
		_ = config.Reload()
		logging.Setup(config.Get().LogLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
