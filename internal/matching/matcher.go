package matching

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hire3x/talent-match/internal/store"
	"github.com/hire3x/talent-match/internal/types"
)

// DefaultTopK is the number of matches returned when the caller does not ask
// for a specific count.
const DefaultTopK = 10

// overFetchFactor is how many times topK raw hits are requested from the
// store. The surplus compensates for per-candidate skips and gives the final
// sort a wider pool. Fixed; there is no adaptive re-fetch when skips still
// leave fewer than topK results.
const overFetchFactor = 3

// Matcher ranks stored candidates against job descriptions. It is stateless
// per request and safe for concurrent use.
type Matcher struct {
	store store.Searcher
}

// New creates a Matcher after validating the weight-profile table.
func New(s store.Searcher) (*Matcher, error) {
	if err := ValidateProfiles(); err != nil {
		return nil, err
	}
	return &Matcher{store: s}, nil
}

// Match retrieves, scores and ranks candidates for a job. The returned list is
// sorted by overall score descending and has at most topK entries — fewer when
// the filtered pool is small or records had to be skipped. Retrieval failures
// abort the request; per-candidate scoring failures only skip that candidate.
func (m *Matcher) Match(ctx context.Context, job *types.JobDescription, topK int, opts Options) ([]types.CandidateMatch, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	filter := BuildFilter(opts)
	hits, err := m.store.Search(ctx, job.ToText(), topK*overFetchFactor, filter)
	if err != nil {
		return nil, &RetrievalError{Cause: err}
	}

	requiredYears := RequiredYears(job)
	weights := WeightsFor(SelectProfile(job.Title))
	titleKeywords := ExtractRoleKeywords(job.Title)

	// Scoring is independent per hit. Results land at the hit's index so the
	// retrieval order survives for the stable sort below.
	scored := make([]*types.CandidateMatch, len(hits))
	var g errgroup.Group
	for i, hit := range hits {
		g.Go(func() error {
			match, err := scoreHit(job, hit, requiredYears, weights, titleKeywords)
			if err != nil {
				log.Printf("[match] skipping candidate %s: %v", hit.ID, err)
				return nil
			}
			scored[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]types.CandidateMatch, 0, len(hits))
	for _, match := range scored {
		if match != nil {
			ranked = append(ranked, *match)
		}
	}

	// Stable sort keeps retrieval order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	log.Printf("[match] job=%s profile=%s hits=%d ranked=%d", job.ID, SelectProfile(job.Title), len(hits), len(ranked))
	return ranked, nil
}
