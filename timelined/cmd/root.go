// Package cmd provides the command-line interface for the timeline
// daemon.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timelined",
	Short: "Timelined runs the wristwatch timeline scheduling service.",
	Long: `Timelined tracks the persistently stored set of timeline items ` +
		`and keeps the calendar-ongoing indicator and the peek HUD state ` +
		`up to date, waking only when an item boundary or a configured ` +
		`show window requires it.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
