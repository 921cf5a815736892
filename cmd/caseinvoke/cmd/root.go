// Package cmd implements the caseinvoke commands.
//
// caseinvoke runs the same handler the Lambda runtime runs, against the
// real AWS endpoints, using the environment (or a .env file) for settings.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "caseinvoke",
	Short: "Run the case creator handler locally",
	Long: `caseinvoke drives the case creator handler outside the Lambda runtime.

Examples:
  # Invoke with an event file
  caseinvoke invoke --event event.json

  # Invoke from stdin
  echo '{"name": "Refund request"}' | caseinvoke invoke

  # Report missing or invalid settings
  caseinvoke check-config`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
