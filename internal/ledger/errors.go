package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrVacancyNotFound indicates the referenced vacancy does not exist
type ErrVacancyNotFound struct {
	VacancyID uuid.UUID
}

func (e *ErrVacancyNotFound) Error() string {
	return fmt.Sprintf("vacancy not found: %s", e.VacancyID)
}

// ErrCandidateNotFound indicates the referenced candidate profile does not exist
type ErrCandidateNotFound struct {
	CandidateProfileID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate profile not found: %s", e.CandidateProfileID)
}
