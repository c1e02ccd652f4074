package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchState is the observable state of a (vacancy, candidate) pair.
type MatchState string

// Match states. Transitions are monotonic: None → OneSided → Mutual.
const (
	MatchStateNone     MatchState = "none"
	MatchStateOneSided MatchState = "one_sided"
	MatchStateMutual   MatchState = "mutual"
)

// LikeSide identifies which actor recorded a like.
type LikeSide string

// Like sides.
const (
	SideCandidate LikeSide = "candidate"
	SideEmployer  LikeSide = "employer"
)

// ParseLikeSide converts a raw string to a LikeSide, returning an error for
// unknown values.
func ParseLikeSide(s string) (LikeSide, error) {
	switch side := LikeSide(s); side {
	case SideCandidate, SideEmployer:
		return side, nil
	}
	return "", fmt.Errorf("unknown like side %q", s)
}

// Match is one persisted ledger row. At most one row exists per
// (VacancyID, CandidateProfileID) pair; rows are created on the first like
// from either side and never deleted.
type Match struct {
	ID                 uuid.UUID `json:"id"`
	VacancyID          uuid.UUID `json:"vacancy_id"`
	CandidateProfileID uuid.UUID `json:"candidate_profile_id"`
	CandidateLiked     bool      `json:"candidate_liked"`
	EmployerLiked      bool      `json:"employer_liked"`
	MatchScore         *int      `json:"match_score,omitempty"`
	CandidatePitch     *string   `json:"candidate_pitch,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsMutual reports whether both sides have liked. Mutuality is always derived
// from the two flags, never stored separately, so the two can never disagree.
func (m *Match) IsMutual() bool {
	return m.CandidateLiked && m.EmployerLiked
}

// State derives the observable match state from the like flags.
func (m *Match) State() MatchState {
	switch {
	case m.CandidateLiked && m.EmployerLiked:
		return MatchStateMutual
	case m.CandidateLiked || m.EmployerLiked:
		return MatchStateOneSided
	default:
		return MatchStateNone
	}
}
