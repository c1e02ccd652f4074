package server

import (
	"encoding/json"
	"net/http"

	"github.com/kupranin/jobswipe/internal/matching"
	"github.com/kupranin/jobswipe/internal/types"
)

// ScoreResponse represents the response for POST /score
type ScoreResponse struct {
	Score      int  `json:"score"`
	PassesGate bool `json:"passesGate"`
}

// handleScore evaluates one explicit candidate/vacancy pair. Debug/tooling
// parity with the `score` CLI command; profiles come inline, not from storage.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	score, passed := matching.Evaluate(&req.Candidate, &req.Vacancy)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Score: score, PassesGate: passed})
}
