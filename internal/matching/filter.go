// Package matching implements the candidate retrieval-and-ranking pipeline:
// hard filters, implicit requirement extraction, weight profile selection,
// multi-factor scoring and the ranking orchestrator.
package matching

import "github.com/hire3x/talent-match/internal/store"

// Options are the optional hard constraints on a match request. Constraints
// exclude candidates outright before ranking; everything else (skills, role)
// only influences scores.
type Options struct {
	MinExperience      *float64
	Location           string
	MinAssessmentScore *float64
}

// BuildFilter translates the supplied constraints into a retrieval predicate,
// one clause per constraint. Returns nil when no constraint is set, so the
// search runs unfiltered.
func BuildFilter(opts Options) *store.Filter {
	filter := &store.Filter{}
	if opts.MinExperience != nil {
		filter.GTE("years_of_experience", *opts.MinExperience)
	}
	if opts.Location != "" {
		filter.EQ("location", opts.Location)
	}
	if opts.MinAssessmentScore != nil {
		filter.GTE("avg_assessment_score", *opts.MinAssessmentScore)
	}
	if filter.Empty() {
		return nil
	}
	return filter
}
