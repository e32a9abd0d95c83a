package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the talent_match version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("talent_match %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
