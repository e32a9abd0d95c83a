package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hire3x/talent-match/internal/embedding"
	"github.com/hire3x/talent-match/internal/types"
)

// Memory is an in-process CandidateStore. It applies the same filter semantics
// and cosine ranking as the Postgres store and is used by tests and local runs
// without a database.
type Memory struct {
	embedder embedding.Embedder

	mu      sync.RWMutex
	records map[string]memoryRecord
	order   []string // insertion order, keeps ranking stable across runs
}

type memoryRecord struct {
	metadata map[string]any
	vector   []float32
}

// NewMemory creates an empty in-memory store.
func NewMemory(embedder embedding.Embedder) *Memory {
	return &Memory{embedder: embedder, records: make(map[string]memoryRecord)}
}

// AddCandidate embeds and stores one candidate.
func (s *Memory) AddCandidate(ctx context.Context, candidate *types.CandidateProfile) error {
	if candidate.ID == "" {
		return fmt.Errorf("candidate has no id")
	}

	vector, err := s.embedder.Embed(ctx, candidate.ToText())
	if err != nil {
		return fmt.Errorf("failed to embed candidate %s: %w", candidate.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[candidate.ID]; !exists {
		s.order = append(s.order, candidate.ID)
	}
	s.records[candidate.ID] = memoryRecord{metadata: candidate.Metadata(), vector: vector}
	return nil
}

// AddCandidates stores a batch of candidates.
func (s *Memory) AddCandidates(ctx context.Context, candidates []*types.CandidateProfile) error {
	for _, c := range candidates {
		if err := s.AddCandidate(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// GetCandidate returns the stored metadata for one candidate, or nil if absent.
func (s *Memory) GetCandidate(_ context.Context, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return record.metadata, nil
}

// DeleteCandidate removes a candidate.
func (s *Memory) DeleteCandidate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("candidate not found: %s", id)
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored candidates.
func (s *Memory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Search embeds the query, filters the records and returns the topK closest
// hits by cosine distance.
func (s *Memory) Search(ctx context.Context, queryText string, topK int, filter *Filter) ([]Hit, error) {
	vector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []Hit
	for _, id := range s.order {
		record := s.records[id]
		ok, err := matchesFilter(record.metadata, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		distance := CosineDistance(vector, record.vector)
		hits = append(hits, Hit{ID: id, Distance: &distance, Metadata: record.metadata})
	}

	sort.SliceStable(hits, func(i, j int) bool { return *hits[i].Distance < *hits[j].Distance })
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// matchesFilter evaluates the AND-of-clauses predicate against one metadata map.
func matchesFilter(metadata map[string]any, filter *Filter) (bool, error) {
	if filter.Empty() {
		return true, nil
	}
	for _, clause := range filter.Clauses {
		switch clause.Op {
		case OpGTE:
			threshold, ok := clause.Value.(float64)
			if !ok {
				return false, fmt.Errorf("$gte value for %s is not numeric", clause.Field)
			}
			actual, ok := numericValue(metadata[clause.Field])
			if !ok || actual < threshold {
				return false, nil
			}
		case OpEQ:
			expected, ok := clause.Value.(string)
			if !ok {
				return false, fmt.Errorf("$eq value for %s is not a string", clause.Field)
			}
			actual, ok := metadata[clause.Field].(string)
			if !ok || actual != expected {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported filter operator: %q", clause.Op)
		}
	}
	return true, nil
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
