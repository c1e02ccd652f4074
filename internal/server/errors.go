// Package server provides the HTTP REST API for the match engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kupranin/jobswipe/internal/ledger"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var vacancyNotFound *ledger.ErrVacancyNotFound
	var candidateNotFound *ledger.ErrCandidateNotFound
	var validation *ErrValidation

	switch {
	case errors.As(err, &vacancyNotFound), errors.As(err, &candidateNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
