package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hire3x/talent-match/internal/embedding"
	"github.com/hire3x/talent-match/internal/types"
)

func memoryWithCandidates(t *testing.T, candidates ...*types.CandidateProfile) *Memory {
	t.Helper()
	s := NewMemory(embedding.NewHashEmbedder(128))
	require.NoError(t, s.AddCandidates(context.Background(), candidates))
	return s
}

func storedCandidate(id, role, location string, years float64, skills ...string) *types.CandidateProfile {
	skillMap := make(map[string]float64, len(skills))
	for i, skill := range skills {
		skillMap[skill] = 1.0 - float64(i)*0.1
	}
	return &types.CandidateProfile{
		ID:                id,
		Name:              "Candidate " + id,
		Headline:          role,
		Summary:           role + " working with " + location,
		CurrentRole:       role,
		Location:          location,
		YearsOfExperience: years,
		Skills:            skillMap,
		Hire3x:            types.Hire3xData{ProfileCompletion: 80, ActivityScore: 60},
	}
}

func TestMemorySearch_RanksCloserDocumentsFirst(t *testing.T) {
	s := memoryWithCandidates(t,
		storedCandidate("backend", "Backend Engineer building Python SQL services", "Berlin", 6, "Python", "SQL"),
		storedCandidate("designer", "Product Designer crafting brand illustration", "Berlin", 6, "Figma"),
	)

	hits, err := s.Search(context.Background(), "Backend Engineer Python SQL services", 10, nil)

	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "backend", hits[0].ID)
	require.NotNil(t, hits[0].Distance)
	assert.Less(t, *hits[0].Distance, *hits[1].Distance)
}

func TestMemorySearch_AppliesGTEFilter(t *testing.T) {
	s := memoryWithCandidates(t,
		storedCandidate("junior", "Backend Engineer", "Berlin", 1, "Python"),
		storedCandidate("senior", "Backend Engineer", "Berlin", 7, "Python"),
	)

	filter := (&Filter{}).GTE("years_of_experience", 5)
	hits, err := s.Search(context.Background(), "Backend Engineer", 10, filter)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "senior", hits[0].ID)
}

func TestMemorySearch_LocationEqualityIsExact(t *testing.T) {
	s := memoryWithCandidates(t,
		storedCandidate("berlin", "Backend Engineer", "Berlin", 5, "Python"),
		storedCandidate("lowercase", "Backend Engineer", "berlin", 5, "Python"),
	)

	filter := (&Filter{}).EQ("location", "Berlin")
	hits, err := s.Search(context.Background(), "Backend Engineer", 10, filter)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "berlin", hits[0].ID)
}

func TestMemorySearch_TruncatesToTopK(t *testing.T) {
	s := memoryWithCandidates(t,
		storedCandidate("a", "Backend Engineer", "Berlin", 3, "Python"),
		storedCandidate("b", "Backend Engineer", "Berlin", 4, "Python"),
		storedCandidate("c", "Backend Engineer", "Berlin", 5, "Python"),
	)

	hits, err := s.Search(context.Background(), "Backend Engineer", 2, nil)

	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestMemoryCRUD_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memoryWithCandidates(t, storedCandidate("x", "QA Engineer", "Oslo", 2, "Selenium"))

	metadata, err := s.GetCandidate(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "QA Engineer", metadata["current_role"])

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteCandidate(ctx, "x"))
	metadata, err = s.GetCandidate(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, metadata)

	assert.Error(t, s.DeleteCandidate(ctx, "x"))
}
