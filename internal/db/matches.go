package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kupranin/jobswipe/internal/types"
)

// -----------------------------------------------------------------------------
// Match Ledger Methods
// -----------------------------------------------------------------------------

// LikeUpdate carries one side's like event into the ledger.
type LikeUpdate struct {
	VacancyID          uuid.UUID
	CandidateProfileID uuid.UUID
	Side               types.LikeSide
	Score              int
	// Pitch overwrites the stored pitch when non-nil; nil leaves it untouched.
	Pitch *string
}

// UpsertLike atomically applies a like to the (vacancy, candidate) pair.
// The row is created on first like; subsequent likes merge under a row lock,
// so two near-simultaneous likes from opposite sides both land regardless of
// interleaving, and an already-true flag is never cleared. Returns the
// resulting row and whether this write was the OneSided→Mutual edge.
func (db *DB) UpsertLike(ctx context.Context, upd LikeUpdate) (*types.Match, bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Ensure the row exists, then lock it for the read-modify-write. The
	// ON CONFLICT DO NOTHING keeps first-insert races harmless: both callers
	// fall through to the same locked row.
	_, err = tx.Exec(ctx,
		`INSERT INTO matches (id, vacancy_id, candidate_profile_id, candidate_liked, employer_liked)
		 VALUES ($1, $2, $3, false, false)
		 ON CONFLICT (vacancy_id, candidate_profile_id) DO NOTHING`,
		uuid.New(), upd.VacancyID, upd.CandidateProfileID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert match row: %w", err)
	}

	var m types.Match
	err = tx.QueryRow(ctx,
		`SELECT id, vacancy_id, candidate_profile_id, candidate_liked, employer_liked,
		        match_score, candidate_pitch, created_at, updated_at
		 FROM matches
		 WHERE vacancy_id = $1 AND candidate_profile_id = $2
		 FOR UPDATE`,
		upd.VacancyID, upd.CandidateProfileID,
	).Scan(&m.ID, &m.VacancyID, &m.CandidateProfileID, &m.CandidateLiked, &m.EmployerLiked,
		&m.MatchScore, &m.CandidatePitch, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock match row: %w", err)
	}

	wasMutual := m.IsMutual()
	switch upd.Side {
	case types.SideCandidate:
		m.CandidateLiked = true
	case types.SideEmployer:
		m.EmployerLiked = true
	default:
		return nil, false, fmt.Errorf("unknown like side %q", upd.Side)
	}

	// The last computed score wins: profiles can legitimately change between
	// the two like events.
	score := upd.Score
	m.MatchScore = &score
	if upd.Pitch != nil {
		m.CandidatePitch = upd.Pitch
	}

	var updatedAt time.Time
	err = tx.QueryRow(ctx,
		`UPDATE matches
		 SET candidate_liked = $1, employer_liked = $2, match_score = $3,
		     candidate_pitch = COALESCE($4, candidate_pitch), updated_at = NOW()
		 WHERE id = $5
		 RETURNING updated_at`,
		m.CandidateLiked, m.EmployerLiked, m.MatchScore, upd.Pitch, m.ID,
	).Scan(&updatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update match row: %w", err)
	}
	m.UpdatedAt = updatedAt

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit like: %w", err)
	}

	becameMutual := !wasMutual && m.IsMutual()
	return &m, becameMutual, nil
}

// GetMatch retrieves the ledger row for a pair, or nil if none exists
func (db *DB) GetMatch(ctx context.Context, vacancyID, candidateProfileID uuid.UUID) (*types.Match, error) {
	var m types.Match
	err := db.pool.QueryRow(ctx,
		`SELECT id, vacancy_id, candidate_profile_id, candidate_liked, employer_liked,
		        match_score, candidate_pitch, created_at, updated_at
		 FROM matches
		 WHERE vacancy_id = $1 AND candidate_profile_id = $2`,
		vacancyID, candidateProfileID,
	).Scan(&m.ID, &m.VacancyID, &m.CandidateProfileID, &m.CandidateLiked, &m.EmployerLiked,
		&m.MatchScore, &m.CandidatePitch, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// MatchListing is a ledger row joined with vacancy/candidate display fields
// for the read-only GET /matches projection.
type MatchListing struct {
	types.Match
	VacancyTitle      string    `json:"vacancy_title"`
	CompanyID         uuid.UUID `json:"company_id"`
	VacancyCityID     string    `json:"vacancy_city_id"`
	CandidateCityID   string    `json:"candidate_city_id"`
	CandidateExpMonth int       `json:"candidate_experience_months"`
}

// MatchFilters holds the one-of filters for listing ledger rows.
type MatchFilters struct {
	CandidateProfileID *uuid.UUID
	CompanyID          *uuid.UUID
	Limit              int
}

// ListMatches retrieves ledger rows joined with display fields, newest first
func (db *DB) ListMatches(ctx context.Context, filters MatchFilters) ([]MatchListing, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT m.id, m.vacancy_id, m.candidate_profile_id, m.candidate_liked,
		       m.employer_liked, m.match_score, m.candidate_pitch, m.created_at, m.updated_at,
		       v.title, v.company_id, v.location_city_id,
		       c.location_city_id, c.experience_months
		FROM matches m
		JOIN vacancies v ON v.id = m.vacancy_id
		JOIN candidate_profiles c ON c.id = m.candidate_profile_id
		WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.CandidateProfileID != nil {
		query += fmt.Sprintf(" AND m.candidate_profile_id = $%d", argNum)
		args = append(args, *filters.CandidateProfileID)
		argNum++
	}
	if filters.CompanyID != nil {
		query += fmt.Sprintf(" AND v.company_id = $%d", argNum)
		args = append(args, *filters.CompanyID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var listings []MatchListing
	for rows.Next() {
		var l MatchListing
		if err := rows.Scan(&l.ID, &l.VacancyID, &l.CandidateProfileID, &l.CandidateLiked,
			&l.EmployerLiked, &l.MatchScore, &l.CandidatePitch, &l.CreatedAt, &l.UpdatedAt,
			&l.VacancyTitle, &l.CompanyID, &l.VacancyCityID,
			&l.CandidateCityID, &l.CandidateExpMonth); err != nil {
			return nil, fmt.Errorf("failed to scan match listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}
