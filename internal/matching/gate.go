// Package matching implements the compatibility gate, per-factor scoring, and
// the weighted aggregate match score for candidate/vacancy pairs. Everything
// here is pure and deterministic: no state, no I/O, safe for concurrent use.
package matching

import "github.com/kupranin/jobswipe/internal/types"

// salaryTolerance is the viability band for the financial gate: a vacancy
// paying at least 80% of the candidate's floor is still considered viable.
const salaryTolerance = 0.8

// PassesGate runs the hard eligibility filter for a pair. Disqualified pairs
// always score 0 and never appear in decks. Work-type compatibility and skill
// requirements are soft signals and do not gate.
func PassesGate(candidate *types.CandidateProfile, vacancy *types.VacancyProfile) bool {
	// Geography: remote work, same city, or a candidate willing to move.
	if !vacancy.IsRemote && vacancy.LocationCityID != candidate.LocationCityID && !candidate.WillingToRelocate {
		return false
	}

	// Financial viability, boundary inclusive.
	if float64(vacancy.SalaryMax) < float64(candidate.SalaryMin)*salaryTolerance {
		return false
	}

	return true
}
