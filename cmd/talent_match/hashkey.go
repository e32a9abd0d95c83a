package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hire3x/talent-match/internal/config"
)

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key <api-key>",
	Short: "Hash a client API key for the server",
	Long: `Hash a client API key with bcrypt. Set the printed hash as API_KEY_HASH on
the server; clients present the plain key to POST /auth/token.`,
	Args: cobra.ExactArgs(1),
	RunE: runHashKey,
}

func init() {
	rootCmd.AddCommand(hashKeyCmd)
}

func runHashKey(_ *cobra.Command, args []string) error {
	keyConfig, err := config.NewAPIKeyConfig()
	if err != nil {
		return err
	}

	hash, err := keyConfig.HashKey(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
