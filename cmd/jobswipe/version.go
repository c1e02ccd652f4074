package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the jobswipe version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobswipe %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
