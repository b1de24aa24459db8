package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate source code",
	Long:  `generate source code derived from the storage schema`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
