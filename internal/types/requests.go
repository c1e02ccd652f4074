package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateMatchRequest represents the body of POST /matches. Setting either
// liked flag to true records that side's like; omitted or false flags never
// clear a stored true flag.
type CreateMatchRequest struct {
	VacancyID          uuid.UUID `json:"vacancyId" validate:"required"`
	CandidateProfileID uuid.UUID `json:"candidateProfileId" validate:"required"`
	CandidateLiked     bool      `json:"candidateLiked,omitempty"`
	EmployerLiked      bool      `json:"employerLiked,omitempty"`
	CandidatePitch     string    `json:"candidatePitch,omitempty"`
}

// Validate validates the CreateMatchRequest using the validator.
func (r *CreateMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScoreRequest represents the body of POST /score: one explicit
// candidate/vacancy pair to evaluate.
type ScoreRequest struct {
	Candidate CandidateProfile `json:"candidate" validate:"required"`
	Vacancy   VacancyProfile   `json:"vacancy" validate:"required"`
}

// Validate validates the embedded profiles using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
