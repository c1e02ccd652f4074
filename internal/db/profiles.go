package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kupranin/jobswipe/internal/types"
)

// -----------------------------------------------------------------------------
// Profile Lookup Methods
// -----------------------------------------------------------------------------
//
// Profiles are created and edited by the surrounding application; the engine
// only reads them. Skills are stored as JSONB. Not-found resolves to nil, nil.

// GetCandidateProfile retrieves a candidate profile snapshot by its ID
func (db *DB) GetCandidateProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var p types.CandidateProfile
	var workTypesJSON, skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, location_city_id, salary_min, willing_to_relocate,
		        experience_months, education_level, work_types, skills
		 FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.LocationCityID, &p.SalaryMin, &p.WillingToRelocate,
		&p.ExperienceMonths, &p.EducationLevel, &workTypesJSON, &skillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	if workTypesJSON != nil {
		_ = json.Unmarshal(workTypesJSON, &p.WorkTypes)
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &p.Skills)
	}

	return &p, nil
}

// GetVacancyProfile retrieves a vacancy profile snapshot by its ID
func (db *DB) GetVacancyProfile(ctx context.Context, id uuid.UUID) (*types.VacancyProfile, error) {
	var p types.VacancyProfile
	var skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, company_id, title, location_city_id, is_remote, salary_max,
		        required_experience_months, required_education_level, work_type, skills
		 FROM vacancies WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.CompanyID, &p.Title, &p.LocationCityID, &p.IsRemote, &p.SalaryMax,
		&p.RequiredExperienceMonths, &p.RequiredEducationLevel, &p.WorkType, &skillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vacancy profile: %w", err)
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &p.Skills)
	}

	return &p, nil
}

// ListVacancyProfiles retrieves active vacancies as a deck pool
func (db *DB) ListVacancyProfiles(ctx context.Context, limit int) ([]types.VacancyProfile, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, company_id, title, location_city_id, is_remote, salary_max,
		        required_experience_months, required_education_level, work_type, skills
		 FROM vacancies WHERE active ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []types.VacancyProfile
	for rows.Next() {
		var p types.VacancyProfile
		var skillsJSON []byte
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Title, &p.LocationCityID, &p.IsRemote, &p.SalaryMax,
			&p.RequiredExperienceMonths, &p.RequiredEducationLevel, &p.WorkType, &skillsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan vacancy: %w", err)
		}
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &p.Skills)
		}
		vacancies = append(vacancies, p)
	}
	return vacancies, nil
}

// ListCandidateProfiles retrieves visible candidate profiles as a deck pool
func (db *DB) ListCandidateProfiles(ctx context.Context, limit int) ([]types.CandidateProfile, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, location_city_id, salary_min, willing_to_relocate,
		        experience_months, education_level, work_types, skills
		 FROM candidate_profiles WHERE visible ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		var p types.CandidateProfile
		var workTypesJSON, skillsJSON []byte
		if err := rows.Scan(&p.ID, &p.LocationCityID, &p.SalaryMin, &p.WillingToRelocate,
			&p.ExperienceMonths, &p.EducationLevel, &workTypesJSON, &skillsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan candidate profile: %w", err)
		}
		if workTypesJSON != nil {
			_ = json.Unmarshal(workTypesJSON, &p.WorkTypes)
		}
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &p.Skills)
		}
		candidates = append(candidates, p)
	}
	return candidates, nil
}
