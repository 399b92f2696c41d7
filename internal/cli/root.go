// Package cli implements the paybatch CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "paybatch",
	Short: "Track freelance worklogs and process payment batches",
	Long: `Paybatch is a terminal client for the paybatch backend.
Freelancers log time against tasks and follow their earnings; administrators
review payment-eligible worklogs and process payment batches.`,
}

// Execute runs the CLI.
func Execute() error {
	config.LoadDotEnv()
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(freelancerCmd)
	rootCmd.AddCommand(versionCmd)
}
