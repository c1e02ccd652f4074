// Package main provides the entry point for the jobswipe match engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobswipe",
	Short: "Jobswipe match engine",
	Long:  "Jobswipe scores candidate/vacancy compatibility, assembles ranked swipe decks, and records likes into the mutual-match ledger via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
