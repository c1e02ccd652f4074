package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kupranin/jobswipe/internal/db"
	"github.com/kupranin/jobswipe/internal/types"
)

// MatchResponse represents the response for POST /matches
type MatchResponse struct {
	ID                 uuid.UUID        `json:"id"`
	VacancyID          uuid.UUID        `json:"vacancyId"`
	CandidateProfileID uuid.UUID        `json:"candidateProfileId"`
	CandidateLiked     bool             `json:"candidateLiked"`
	EmployerLiked      bool             `json:"employerLiked"`
	MatchScore         *int             `json:"matchScore,omitempty"`
	State              types.MatchState `json:"state"`
	BecameMutual       bool             `json:"becameMutual"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// handleCreateMatch records likes per the wire contract: each true liked flag
// triggers that side's recordLike; omitted or false flags never clear a
// stored true flag.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req types.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if !req.CandidateLiked && !req.EmployerLiked {
		s.errorResponse(w, http.StatusBadRequest, "At least one of candidateLiked or employerLiked must be true")
		return
	}

	sides := make([]types.LikeSide, 0, 2)
	if req.CandidateLiked {
		sides = append(sides, types.SideCandidate)
	}
	if req.EmployerLiked {
		sides = append(sides, types.SideEmployer)
	}

	resp := MatchResponse{
		VacancyID:          req.VacancyID,
		CandidateProfileID: req.CandidateProfileID,
	}
	for _, side := range sides {
		result, err := s.ledger.RecordLike(r.Context(), req.VacancyID, req.CandidateProfileID, side, req.CandidatePitch)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		resp.ID = result.Match.ID
		resp.CandidateLiked = result.Match.CandidateLiked
		resp.EmployerLiked = result.Match.EmployerLiked
		resp.MatchScore = result.Match.MatchScore
		resp.State = result.State
		resp.CreatedAt = result.Match.CreatedAt
		// Both-sides requests report the edge if either write crossed it.
		resp.BecameMutual = resp.BecameMutual || result.BecameMutual
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// ListMatchesResponse represents the response for GET /matches
type ListMatchesResponse struct {
	Matches []db.MatchListing `json:"matches"`
	Count   int               `json:"count"`
}

// handleListMatches lists ledger rows joined with display fields, newest
// first. Exactly one of candidateProfileId or companyId is required.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	filters := db.MatchFilters{
		Limit: parseQueryInt(r, "limit", 50, s.cfg.MatchListMax),
	}

	candidateStr := r.URL.Query().Get("candidateProfileId")
	companyStr := r.URL.Query().Get("companyId")
	switch {
	case candidateStr != "" && companyStr != "":
		s.errorResponse(w, http.StatusBadRequest, "candidateProfileId and companyId are mutually exclusive")
		return
	case candidateStr != "":
		id, err := uuid.Parse(candidateStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid candidateProfileId")
			return
		}
		filters.CandidateProfileID = &id
	case companyStr != "":
		id, err := uuid.Parse(companyStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid companyId")
			return
		}
		filters.CompanyID = &id
	default:
		s.errorResponse(w, http.StatusBadRequest, "candidateProfileId or companyId query parameter is required")
		return
	}

	matches, err := s.store.ListMatches(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListMatchesResponse{
		Matches: matches,
		Count:   len(matches),
	})
}
