package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hire3x/talent-match/internal/sample"
	"github.com/hire3x/talent-match/internal/server"
)

var (
	serveAddr        string
	serveSampleCount int
	serveSampleSeed  int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing candidate ingestion, matching and outreach
endpoints. Requires JWT_SECRET and API_KEY_HASH; uses PostgreSQL when
DATABASE_URL is set and an in-memory store otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().IntVar(&serveSampleCount, "sample", 0, "Seed the in-memory store with this many sample candidates")
	serveCmd.Flags().Int64Var(&serveSampleSeed, "seed", 42, "Random seed for --sample")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKeyHash := os.Getenv("API_KEY_HASH")
	if apiKeyHash == "" {
		return fmt.Errorf("API_KEY_HASH environment variable is required (generate one with 'talent_match hash-key')")
	}

	ctx := cmd.Context()
	embedder, err := newEmbedder(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("EMBEDDING_MODEL"))
	if err != nil {
		return err
	}
	defer func() { _ = embedder.Close() }()

	candidateStore, closeStore, err := openStore(ctx, os.Getenv("DATABASE_URL"), embedder)
	if err != nil {
		return err
	}
	defer closeStore()

	if serveSampleCount > 0 {
		generated := sample.New(serveSampleSeed).Candidates(serveSampleCount)
		if err := candidateStore.AddCandidates(ctx, generated); err != nil {
			return err
		}
		fmt.Printf("Seeded %d sample candidates\n", serveSampleCount)
	}

	srv, err := server.New(server.Config{
		Addr:       serveAddr,
		APIKeyHash: apiKeyHash,
		Store:      candidateStore,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
