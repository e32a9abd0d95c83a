package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hire3x/talent-match/internal/store"
	"github.com/hire3x/talent-match/internal/types"
)

// stubSearcher returns canned hits and records the last search request.
type stubSearcher struct {
	hits []store.Hit
	err  error

	calls      int
	lastQuery  string
	lastTopK   int
	lastFilter *store.Filter
}

func (s *stubSearcher) Search(_ context.Context, queryText string, topK int, filter *store.Filter) ([]store.Hit, error) {
	s.calls++
	s.lastQuery = queryText
	s.lastTopK = topK
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.hits, nil
}

func candidateHit(id string, distance float64, metadata map[string]any) store.Hit {
	return store.Hit{ID: id, Distance: &distance, Metadata: metadata}
}

func strongCandidateMetadata(name string) map[string]any {
	return map[string]any{
		"name":                      name,
		"current_role":              "Backend Engineer",
		"years_of_experience":       6.0,
		"skills":                    "Python,SQL,Go",
		"top_skills":                "Python,SQL",
		"avg_assessment_score":      90.0,
		"avg_completion_rate":       0.5,
		"avg_accuracy":              0.9,
		"hire3x_profile_completion": 80.0,
		"hire3x_activity_score":     60.0,
	}
}

func weakCandidateMetadata(name string) map[string]any {
	return map[string]any{
		"name":                name,
		"current_role":        "Accountant",
		"years_of_experience": 1.0,
		"skills":              "Excel",
	}
}

func TestMatch_RanksStrongerCandidateFirst(t *testing.T) {
	// Weak candidate retrieved first; ranking must reorder by overall score.
	stub := &stubSearcher{hits: []store.Hit{
		candidateHit("weak", 0.6, weakCandidateMetadata("Weak")),
		candidateHit("strong", 0.2, strongCandidateMetadata("Strong")),
	}}
	matcher, err := New(stub)
	require.NoError(t, err)

	matches, err := matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "strong", matches[0].CandidateID)
	assert.Equal(t, "weak", matches[1].CandidateID)
	assert.Greater(t, matches[0].OverallScore, matches[1].OverallScore)
}

func TestMatch_OverFetchesFromStore(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), seniorBackendJob(), 4, Options{})
	require.NoError(t, err)
	assert.Equal(t, 12, stub.lastTopK)
}

func TestMatch_DefaultsTopK(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), seniorBackendJob(), 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTopK*overFetchFactor, stub.lastTopK)
}

func TestMatch_TruncatesToTopK(t *testing.T) {
	stub := &stubSearcher{hits: []store.Hit{
		candidateHit("a", 0.1, strongCandidateMetadata("A")),
		candidateHit("b", 0.2, strongCandidateMetadata("B")),
		candidateHit("c", 0.3, strongCandidateMetadata("C")),
	}}
	matcher, err := New(stub)
	require.NoError(t, err)

	matches, err := matcher.Match(context.Background(), seniorBackendJob(), 2, Options{})
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestMatch_SkipsCandidateWithUnusableMetadata(t *testing.T) {
	stub := &stubSearcher{hits: []store.Hit{
		candidateHit("broken", 0.1, map[string]any{"name": "No Years"}),
		candidateHit("ok", 0.2, strongCandidateMetadata("OK")),
	}}
	matcher, err := New(stub)
	require.NoError(t, err)

	matches, err := matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "ok", matches[0].CandidateID)
}

func TestMatch_RetrievalFailureAbortsRequest(t *testing.T) {
	cause := errors.New("connection refused")
	stub := &stubSearcher{err: cause}
	matcher, err := New(stub)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.Error(t, err)

	var retrievalErr *RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.ErrorIs(t, err, cause)
}

func TestMatch_InvalidJobNeverHitsTheStore(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	job := &types.JobDescription{Title: "Missing Everything Else"}
	_, err = matcher.Match(context.Background(), job, 10, Options{})
	assert.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestMatch_PassesFilterThrough(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), seniorBackendJob(), 10, Options{
		MinExperience: floatPtr(5),
		Location:      "Remote",
	})
	require.NoError(t, err)

	require.NotNil(t, stub.lastFilter)
	require.Len(t, stub.lastFilter.Clauses, 2)
	assert.Equal(t, "years_of_experience", stub.lastFilter.Clauses[0].Field)
	assert.Equal(t, "location", stub.lastFilter.Clauses[1].Field)
}

func TestMatch_NoConstraintsSearchesUnfiltered(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	_, err = matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	assert.Nil(t, stub.lastFilter)
}

func TestMatch_QueriesWithJobText(t *testing.T) {
	stub := &stubSearcher{}
	matcher, err := New(stub)
	require.NoError(t, err)

	job := seniorBackendJob()
	_, err = matcher.Match(context.Background(), job, 10, Options{})
	require.NoError(t, err)
	assert.Equal(t, job.ToText(), stub.lastQuery)
}

func TestMatch_Deterministic(t *testing.T) {
	stub := &stubSearcher{hits: []store.Hit{
		candidateHit("a", 0.3, strongCandidateMetadata("A")),
		candidateHit("b", 0.1, weakCandidateMetadata("B")),
		candidateHit("c", 0.2, strongCandidateMetadata("C")),
	}}
	matcher, err := New(stub)
	require.NoError(t, err)

	first, err := matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	second, err := matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatch_TiedScoresKeepRetrievalOrder(t *testing.T) {
	// Identical metadata and distance produce identical scores; the stable sort
	// must preserve the store's order.
	stub := &stubSearcher{hits: []store.Hit{
		candidateHit("first", 0.2, strongCandidateMetadata("Same")),
		candidateHit("second", 0.2, strongCandidateMetadata("Same")),
	}}
	matcher, err := New(stub)
	require.NoError(t, err)

	matches, err := matcher.Match(context.Background(), seniorBackendJob(), 10, Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].CandidateID)
	assert.Equal(t, "second", matches[1].CandidateID)
}
