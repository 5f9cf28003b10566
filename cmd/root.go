package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soundvault",
	Short: "SoundVault is a catalog backend for a hierarchical audio library.",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
