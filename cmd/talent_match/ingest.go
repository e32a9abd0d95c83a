package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <candidates.json>",
	Short: "Load candidate profiles into the database",
	Long: `Validate a JSON array of candidate profiles against the candidate schema,
embed each profile and upsert it into the PostgreSQL store.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	candidates, err := loadCandidates(args[0])
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates found in %s", args[0])
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

	total, err := candidateStore.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Ingested %d candidates (%d total in store)\n", len(candidates), total)
	return nil
}
