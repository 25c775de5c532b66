package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocrc",
	Short: "Compute and verify CRC checksums",
	Long:  "gocrc computes, verifies, and catalogues CRC checksums using a table-driven, slice-by-N engine.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
