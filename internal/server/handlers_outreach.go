package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hire3x/talent-match/internal/outreach"
	"github.com/hire3x/talent-match/internal/types"
)

// EmailRequest is the POST /api/email/generate request body.
type EmailRequest struct {
	CandidateID string                `json:"candidate_id"`
	Job         *types.JobDescription `json:"job"`
}

// handleGenerateEmail handles POST /api/email/generate: draft an outreach
// email for one stored candidate and a job.
func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if req.CandidateID == "" {
		writeError(w, &ErrValidation{Field: "candidate_id", Message: "candidate_id is required"})
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

	metadata, err := s.store.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		writeError(w, err)
		return
	}
	if metadata == nil {
		writeError(w, &ErrCandidateNotFound{ID: req.CandidateID})
		return
	}

	summary, err := types.SummaryFromMetadata(req.CandidateID, metadata)
	if err != nil {
		writeError(w, &ErrValidation{Field: "candidate_id", Message: err.Error()})
		return
	}

	match := &types.CandidateMatch{
		CandidateID:    summary.ID,
		CandidateName:  summary.Name,
		CurrentRole:    summary.CurrentRole,
		MatchingSkills: skillIntersection(summary.Skills, req.Job.RequiredSkills),
	}

	email, err := outreach.Generate(match, req.Job)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, email)
}

// skillIntersection returns the candidate skills that appear in the required
// set, case-insensitive, in the candidate's spelling.
func skillIntersection(candidateSkills, requiredSkills []string) []string {
	required := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		required[strings.ToLower(skill)] = true
	}

	var matching []string
	for _, skill := range candidateSkills {
		if required[strings.ToLower(skill)] {
			matching = append(matching, skill)
		}
	}
	return matching
}
