package types

import (
	"fmt"
	"strconv"
	"strings"
)

// CandidateSummary is the denormalized view of a candidate that the scorer sees.
// It is reconstructed from stored metadata on every query and carries no live
// object identity.
type CandidateSummary struct {
	ID                string
	Name              string
	Headline          string
	CurrentRole       string
	YearsOfExperience float64
	Location          string
	Skills            []string
	TopSkills         []string
	AssessmentNames   []string

	AvgAssessmentScore   float64 // 0-100
	AvgPercentile        float64
	AvgCompletionRate    float64 // 0-1
	AvgAccuracy          float64 // 0-1
	ProfileCompletionPct float64 // 0-100
	ActivityScorePct     float64 // 0-100

	GithubURL    string
	LinkedinURL  string
	PortfolioURL string
}

// SummaryFromMetadata reconstructs a CandidateSummary from flattened store
// metadata. years_of_experience is the one field the scorer cannot work
// without; a record missing it is malformed and must be skipped.
func SummaryFromMetadata(id string, metadata map[string]any) (*CandidateSummary, error) {
	years, ok := floatField(metadata, "years_of_experience")
	if !ok {
		return nil, fmt.Errorf("candidate %s: metadata missing years_of_experience", id)
	}
	if years < 0 {
		return nil, fmt.Errorf("candidate %s: negative years_of_experience %g", id, years)
	}

	s := &CandidateSummary{
		ID:                id,
		Name:              stringField(metadata, "name"),
		Headline:          stringField(metadata, "headline"),
		CurrentRole:       stringField(metadata, "current_role"),
		YearsOfExperience: years,
		Location:          stringField(metadata, "location"),
		Skills:            splitList(stringField(metadata, "skills")),
		TopSkills:         splitList(stringField(metadata, "top_skills")),
		AssessmentNames:   splitList(stringField(metadata, "assessment_names")),
		GithubURL:         stringField(metadata, "github_url"),
		LinkedinURL:       stringField(metadata, "linkedin_url"),
		PortfolioURL:      stringField(metadata, "portfolio_url"),
	}

	s.AvgAssessmentScore, _ = floatField(metadata, "avg_assessment_score")
	s.AvgPercentile, _ = floatField(metadata, "avg_assessment_percentile")
	s.AvgCompletionRate, _ = floatField(metadata, "avg_completion_rate")
	s.AvgAccuracy, _ = floatField(metadata, "avg_accuracy")
	s.ProfileCompletionPct, _ = floatField(metadata, "hire3x_profile_completion")
	s.ActivityScorePct, _ = floatField(metadata, "hire3x_activity_score")

	return s, nil
}

// RankingFactors holds the eight factor scores that blend into the overall
// score. Every factor is confined to [0,1] except ExperienceMatch, which is
// capped at 1.5 before blending.
type RankingFactors struct {
	Similarity            float64 `json:"similarity"`
	SkillMatch            float64 `json:"skill_match"`
	RoleMatch             float64 `json:"role_match"`
	ExperienceMatch       float64 `json:"experience_match"`
	SkillProficiency      float64 `json:"skill_proficiency"`
	AssessmentPerformance float64 `json:"assessment_performance"`
	ProfileCompletion     float64 `json:"profile_completion"`
	Activity              float64 `json:"activity_score"`
}

// CandidateMatch is one entry in the ranked output of a match request.
type CandidateMatch struct {
	CandidateID       string         `json:"candidate_id"`
	CandidateName     string         `json:"candidate_name"`
	Headline          string         `json:"headline"`
	CurrentRole       string         `json:"current_role"`
	YearsOfExperience float64        `json:"years_of_experience"`
	Location          string         `json:"location"`
	SimilarityScore   float64        `json:"similarity_score"`
	MatchingSkills    []string       `json:"matching_skills"`
	OverallScore      float64        `json:"overall_score"`
	RankingFactors    RankingFactors `json:"ranking_factors"`
	GithubURL         string         `json:"github_url,omitempty"`
	LinkedinURL       string         `json:"linkedin_url,omitempty"`
	PortfolioURL      string         `json:"portfolio_url,omitempty"`
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// floatField reads a numeric metadata value. Metadata round-trips through JSON
// in the postgres store, so numbers may arrive as float64, int, or strings.
func floatField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// splitList splits a comma-joined metadata string into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
