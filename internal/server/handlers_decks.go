package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kupranin/jobswipe/internal/deck"
)

// CandidateDeckResponse represents the response for GET /candidates/{id}/deck
type CandidateDeckResponse struct {
	Deck      []deck.VacancyEntry `json:"deck"`
	Count     int                 `json:"count"`
	Threshold int                 `json:"threshold"`
}

// VacancyDeckResponse represents the response for GET /vacancies/{id}/deck
type VacancyDeckResponse struct {
	Deck      []deck.CandidateEntry `json:"deck"`
	Count     int                   `json:"count"`
	Threshold int                   `json:"threshold"`
}

// handleCandidateDeck returns the ranked vacancy deck for a candidate.
func (s *Server) handleCandidateDeck(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate profile ID")
		return
	}

	threshold := parseQueryInt(r, "threshold", s.cfg.DeckThreshold, 100)
	if threshold < 0 {
		s.errorResponse(w, http.StatusBadRequest, "threshold must be in 0-100")
		return
	}

	candidate, err := s.store.GetCandidateProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate profile not found")
		return
	}

	var entries []deck.VacancyEntry
	if s.deckCache.Get(r.Context(), "candidate", id, threshold, &entries) {
		s.jsonResponse(w, http.StatusOK, CandidateDeckResponse{Deck: entries, Count: len(entries), Threshold: threshold})
		return
	}

	pool, err := s.store.ListVacancyProfiles(r.Context(), s.cfg.DeckPoolSize)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	entries = deck.ForCandidate(candidate, pool, threshold)
	s.deckCache.Set(r.Context(), "candidate", id, threshold, entries)

	s.jsonResponse(w, http.StatusOK, CandidateDeckResponse{
		Deck:      entries,
		Count:     len(entries),
		Threshold: threshold,
	})
}

// handleVacancyDeck returns the ranked candidate deck for a vacancy.
func (s *Server) handleVacancyDeck(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	threshold := parseQueryInt(r, "threshold", s.cfg.DeckThreshold, 100)
	if threshold < 0 {
		s.errorResponse(w, http.StatusBadRequest, "threshold must be in 0-100")
		return
	}

	vacancy, err := s.store.GetVacancyProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if vacancy == nil {
		s.errorResponse(w, http.StatusNotFound, "Vacancy not found")
		return
	}

	var entries []deck.CandidateEntry
	if s.deckCache.Get(r.Context(), "vacancy", id, threshold, &entries) {
		s.jsonResponse(w, http.StatusOK, VacancyDeckResponse{Deck: entries, Count: len(entries), Threshold: threshold})
		return
	}

	pool, err := s.store.ListCandidateProfiles(r.Context(), s.cfg.DeckPoolSize)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	entries = deck.ForVacancy(vacancy, pool, threshold)
	s.deckCache.Set(r.Context(), "vacancy", id, threshold, entries)

	s.jsonResponse(w, http.StatusOK, VacancyDeckResponse{
		Deck:      entries,
		Count:     len(entries),
		Threshold: threshold,
	})
}
