package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kupranin/jobswipe/internal/types"
)

func TestPassesGate_RemoteVacancy(t *testing.T) {
	candidate := &types.CandidateProfile{LocationCityID: "city-a", SalaryMin: 1000}
	vacancy := &types.VacancyProfile{LocationCityID: "city-b", IsRemote: true, SalaryMax: 2000}

	assert.True(t, PassesGate(candidate, vacancy))
}

func TestPassesGate_SameCity(t *testing.T) {
	candidate := &types.CandidateProfile{LocationCityID: "city-a", SalaryMin: 1000}
	vacancy := &types.VacancyProfile{LocationCityID: "city-a", SalaryMax: 2000}

	assert.True(t, PassesGate(candidate, vacancy))
}

func TestPassesGate_WillingToRelocate(t *testing.T) {
	candidate := &types.CandidateProfile{LocationCityID: "city-a", WillingToRelocate: true, SalaryMin: 1000}
	vacancy := &types.VacancyProfile{LocationCityID: "city-b", SalaryMax: 2000}

	assert.True(t, PassesGate(candidate, vacancy))
}

func TestPassesGate_GeographyDisqualifies(t *testing.T) {
	// Different cities, on-site only, candidate staying put.
	candidate := &types.CandidateProfile{LocationCityID: "city-a", SalaryMin: 1000}
	vacancy := &types.VacancyProfile{LocationCityID: "city-b", SalaryMax: 2000}

	assert.False(t, PassesGate(candidate, vacancy))
}

func TestPassesGate_SalaryToleranceBoundary(t *testing.T) {
	tests := []struct {
		name      string
		salaryMin int
		salaryMax int
		expected  bool
	}{
		{"well above floor", 1000, 1500, true},
		{"exactly 80% of floor", 1000, 800, true},
		{"just below 80% of floor", 1000, 799, false},
		{"zero floor", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := &types.CandidateProfile{LocationCityID: "city-a", SalaryMin: tt.salaryMin}
			vacancy := &types.VacancyProfile{LocationCityID: "city-a", SalaryMax: tt.salaryMax}
			assert.Equal(t, tt.expected, PassesGate(candidate, vacancy))
		})
	}
}

func TestPassesGate_Deterministic(t *testing.T) {
	candidate := &types.CandidateProfile{LocationCityID: "city-a", SalaryMin: 1000}
	vacancy := &types.VacancyProfile{LocationCityID: "city-a", SalaryMax: 850}

	first := PassesGate(candidate, vacancy)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PassesGate(candidate, vacancy))
	}
}
