package server

import (
	"encoding/json"
	"net/http"

	"github.com/hire3x/talent-match/internal/matching"
	"github.com/hire3x/talent-match/internal/types"
)

// MatchRequest is the POST /api/match request body. The constraint fields are
// pointers so "absent" and "zero" stay distinguishable.
type MatchRequest struct {
	Job                *types.JobDescription `json:"job"`
	TopK               int                   `json:"top_k,omitempty"`
	MinExperience      *float64              `json:"min_experience,omitempty"`
	Location           string                `json:"location,omitempty"`
	MinAssessmentScore *float64              `json:"min_assessment_score,omitempty"`
}

// MatchResponse is the POST /api/match response body.
type MatchResponse struct {
	JobID    string                 `json:"job_id"`
	JobTitle string                 `json:"job_title"`
	Total    int                    `json:"total"`
	Matches  []types.CandidateMatch `json:"matches"`
}

// handleMatch handles POST /api/match: rank stored candidates against a job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if req.Job == nil {
		writeError(w, &ErrValidation{Field: "job", Message: "job is required"})
		return
	}
	if err := req.Job.Validate(); err != nil {
		writeError(w, &ErrValidation{Field: "job", Message: err.Error()})
		return
	}
	if req.TopK < 0 {
		writeError(w, &ErrValidation{Field: "top_k", Message: "top_k must not be negative"})
		return
	}

	opts := matching.Options{
		MinExperience:      req.MinExperience,
		Location:           req.Location,
		MinAssessmentScore: req.MinAssessmentScore,
	}

	matches, err := s.matcher.Match(r.Context(), req.Job, req.TopK, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		JobID:    req.Job.ID,
		JobTitle: req.Job.Title,
		Total:    len(matches),
		Matches:  matches,
	})
}
