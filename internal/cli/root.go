// Package cli defines the tracker command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the base command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Automates FCR tracking through the Maersk SCM portal",
		Long:          "tracker reads shipment reference numbers from a spreadsheet, submits each one through the Maersk tracking portal in a headless browser, captures the result pages as PDF artifacts and writes summary reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand())
	return rootCmd
}

// Execute runs the command tree and returns the resulting error.
func Execute() error {
	return NewRootCommand().Execute()
}
