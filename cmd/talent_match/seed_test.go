package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hire3x/talent-match/internal/types"
)

func TestSeedCommand_WritesCandidateFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "candidates.json")
	rootCmd.SetArgs([]string{"seed", "--count", "3", "--seed", "7", "--out", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var candidates []*types.CandidateProfile
	require.NoError(t, json.Unmarshal(data, &candidates))
	require.Len(t, candidates, 3)
	for _, c := range candidates {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Skills)
	}

	// Generated profiles round-trip through the same loader ingest uses.
	loaded, err := loadCandidates(out)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestSeedCommand_RejectsNonPositiveCount(t *testing.T) {
	rootCmd.SetArgs([]string{"seed", "--count", "0"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count must be positive")
}
