package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hire3x/talent-match/internal/sample"
)

var (
	seedCount  int
	seedSeed   int64
	seedOut    string
	seedIngest bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate sample candidate profiles",
	Long: `Generate realistic sample candidate profiles for demos and local testing.

By default the profiles are printed as a JSON array. Use --out to write them
to a file, or --ingest to embed and store them in the configured database.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 50, "Number of candidates to generate")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 42, "Random seed; the same seed yields the same candidates")
	seedCmd.Flags().StringVar(&seedOut, "out", "", "Write the generated JSON to this file instead of stdout")
	seedCmd.Flags().BoolVar(&seedIngest, "ingest", false, "Embed and store the generated candidates in the database")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	candidates := sample.New(seedSeed).Candidates(seedCount)

	if seedIngest {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required with --ingest")
		}

		ctx := cmd.Context()
		embedder, err := newEmbedder(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("EMBEDDING_MODEL"))
		if err != nil {
			return err
		}
		defer func() { _ = embedder.Close() }()

		candidateStore, closeStore, err := openStore(ctx, databaseURL, embedder)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := candidateStore.AddCandidates(ctx, candidates); err != nil {
			return err
		}
		fmt.Printf("Seeded %d candidates into the database\n", len(candidates))
		return nil
	}

	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}
	data = append(data, '\n')

	if seedOut != "" {
		if err := os.WriteFile(seedOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", seedOut, err)
		}
		fmt.Printf("Wrote %d candidates to %s\n", len(candidates), seedOut)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
