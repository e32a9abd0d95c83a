package server

import (
	"encoding/json"
	"net/http"

	"github.com/hire3x/talent-match/internal/types"
)

// BatchRequest is the POST /api/candidates/batch request body.
type BatchRequest struct {
	Candidates []*types.CandidateProfile `json:"candidates"`
}

// handleAddCandidate handles POST /api/candidates: ingest one candidate.
func (s *Server) handleAddCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate types.CandidateProfile
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := validateCandidate(&candidate); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.AddCandidate(r.Context(), &candidate); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":     candidate.ID,
		"status": "added",
	})
}

// handleAddCandidatesBatch handles POST /api/candidates/batch.
func (s *Server) handleAddCandidatesBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if len(req.Candidates) == 0 {
		writeError(w, &ErrValidation{Field: "candidates", Message: "candidates must not be empty"})
		return
	}
	for _, candidate := range req.Candidates {
		if err := validateCandidate(candidate); err != nil {
			writeError(w, err)
			return
		}
	}

	if err := s.store.AddCandidates(r.Context(), req.Candidates); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"added":  len(req.Candidates),
		"status": "added",
	})
}

// handleGetCandidate handles GET /api/candidates/{id}: returns the stored
// metadata view of a candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	metadata, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if metadata == nil {
		writeError(w, &ErrCandidateNotFound{ID: id})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":       id,
		"metadata": metadata,
	})
}

// handleDeleteCandidate handles DELETE /api/candidates/{id}.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	metadata, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if metadata == nil {
		writeError(w, &ErrCandidateNotFound{ID: id})
		return
	}

	if err := s.store.DeleteCandidate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "deleted",
	})
}

// handleCandidateCount handles GET /api/candidates/count.
func (s *Server) handleCandidateCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// validateCandidate checks the fields ingestion cannot work without.
func validateCandidate(candidate *types.CandidateProfile) error {
	if candidate == nil {
		return &ErrValidation{Field: "candidate", Message: "candidate is required"}
	}
	if candidate.ID == "" {
		return &ErrValidation{Field: "id", Message: "id is required"}
	}
	if candidate.Name == "" {
		return &ErrValidation{Field: "name", Message: "name is required"}
	}
	if candidate.YearsOfExperience < 0 {
		return &ErrValidation{Field: "years_of_experience", Message: "years_of_experience must not be negative"}
	}
	return nil
}
