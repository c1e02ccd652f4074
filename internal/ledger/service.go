// Package ledger records one-sided likes per (vacancy, candidate) pair and
// detects the transition to a mutual match. It is the only stateful component
// of the engine; all atomicity lives in the backing MatchStore.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kupranin/jobswipe/internal/db"
	"github.com/kupranin/jobswipe/internal/matching"
	"github.com/kupranin/jobswipe/internal/types"
)

// ProfileStore looks up current profile snapshots by id. Owned by the
// surrounding application; the ledger only reads.
type ProfileStore interface {
	GetCandidateProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
	GetVacancyProfile(ctx context.Context, id uuid.UUID) (*types.VacancyProfile, error)
}

// MatchStore persists ledger rows. UpsertLike must be atomic per pair:
// merge semantics, never last-writer-wins over the whole row.
type MatchStore interface {
	UpsertLike(ctx context.Context, upd db.LikeUpdate) (*types.Match, bool, error)
}

// Result is the outcome of one recorded like.
type Result struct {
	Match *types.Match     `json:"match"`
	State types.MatchState `json:"state"`
	Score int              `json:"score"`
	// BecameMutual is true only on the OneSided→Mutual edge, never on a
	// duplicate write to an already-mutual pair. Callers use it to decide
	// whether to fire a new-match notification.
	BecameMutual bool `json:"became_mutual"`
}

// Service coordinates profile lookup, score recomputation, and the atomic
// ledger upsert.
type Service struct {
	profiles ProfileStore
	matches  MatchStore
}

// NewService creates a ledger service over the given stores.
func NewService(profiles ProfileStore, matches MatchStore) *Service {
	return &Service{profiles: profiles, matches: matches}
}

// RecordLike applies one side's like to a pair. The match score is recomputed
// against the current profiles at write time, so it can drift between the two
// like events; the last computed score wins. Duplicate likes from the same
// side are idempotent. Unknown ids fail with NotFound and write nothing.
func (s *Service) RecordLike(ctx context.Context, vacancyID, candidateProfileID uuid.UUID, side types.LikeSide, pitch string) (*Result, error) {
	candidate, err := s.profiles.GetCandidateProfile(ctx, candidateProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up candidate profile: %w", err)
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateProfileID: candidateProfileID}
	}

	vacancy, err := s.profiles.GetVacancyProfile(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vacancy: %w", err)
	}
	if vacancy == nil {
		return nil, &ErrVacancyNotFound{VacancyID: vacancyID}
	}

	upd := db.LikeUpdate{
		VacancyID:          vacancyID,
		CandidateProfileID: candidateProfileID,
		Side:               side,
		Score:              matching.Score(candidate, vacancy),
	}
	if p := strings.TrimSpace(pitch); p != "" {
		upd.Pitch = &p
	}

	match, becameMutual, err := s.matches.UpsertLike(ctx, upd)
	if err != nil {
		return nil, err
	}

	return &Result{
		Match:        match,
		State:        match.State(),
		Score:        upd.Score,
		BecameMutual: becameMutual,
	}, nil
}
