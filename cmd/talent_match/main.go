// Package main provides the entry point for the Talent Match CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_match",
	Short: "Hire3x talent matching engine",
	Long:  "Talent Match ranks stored candidate profiles against job descriptions using embedding retrieval and multi-factor scoring, and can serve the pipeline over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
