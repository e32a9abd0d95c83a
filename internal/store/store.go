// Package store provides candidate persistence and nearest-neighbor retrieval.
package store

import (
	"context"

	"github.com/hire3x/talent-match/internal/types"
)

// Op is a filter clause operator. The retrieval contract supports numeric >=
// and string equality, matching the query language of the original vector
// database.
type Op string

const (
	OpGTE Op = "$gte"
	OpEQ  Op = "$eq"
)

// Clause is one AND-condition on a named metadata field.
type Clause struct {
	Field string
	Op    Op
	Value any
}

// Filter is an AND-of-clauses predicate applied before similarity ranking.
// A nil *Filter means the search is unfiltered.
type Filter struct {
	Clauses []Clause
}

// GTE appends a numeric >= clause and returns the filter for chaining.
func (f *Filter) GTE(field string, value float64) *Filter {
	f.Clauses = append(f.Clauses, Clause{Field: field, Op: OpGTE, Value: value})
	return f
}

// EQ appends a string equality clause and returns the filter for chaining.
func (f *Filter) EQ(field string, value string) *Filter {
	f.Clauses = append(f.Clauses, Clause{Field: field, Op: OpEQ, Value: value})
	return f
}

// Empty reports whether the filter has no clauses.
func (f *Filter) Empty() bool {
	return f == nil || len(f.Clauses) == 0
}

// Hit is one candidate returned by a search: an ID, a dissimilarity distance
// (0 = identical, nil when the backend produced none) and the stored metadata.
type Hit struct {
	ID       string
	Distance *float64
	Metadata map[string]any
}

// Searcher is the retrieval contract the matching pipeline depends on.
type Searcher interface {
	// Search embeds queryText and returns up to topK hits ordered by ascending
	// distance, restricted to candidates passing the filter.
	Search(ctx context.Context, queryText string, topK int, filter *Filter) ([]Hit, error)
}

// CandidateStore is the full persistence contract: retrieval plus CRUD used by
// ingestion and the HTTP API.
type CandidateStore interface {
	Searcher
	AddCandidate(ctx context.Context, candidate *types.CandidateProfile) error
	AddCandidates(ctx context.Context, candidates []*types.CandidateProfile) error
	GetCandidate(ctx context.Context, id string) (map[string]any, error)
	DeleteCandidate(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
