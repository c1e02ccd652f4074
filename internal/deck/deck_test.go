package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kupranin/jobswipe/internal/types"
)

// anchorCandidate clears the gate against every vacancy built by vacancyScoring.
func anchorCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		LocationCityID:   "city-a",
		SalaryMin:        1000,
		ExperienceMonths: 36,
		EducationLevel:   types.EducationMaster,
	}
}

// vacancyScoring builds a vacancy whose score against anchorCandidate is
// controlled by its required experience: the experience segment is the only
// one not fully met, so score = (3*ratio + 2) / 5 * 100.
func vacancyScoring(title string, requiredMonths int) types.VacancyProfile {
	return types.VacancyProfile{
		Title:                    title,
		LocationCityID:           "city-a",
		SalaryMax:                2000,
		RequiredEducationLevel:   types.EducationBachelor,
		RequiredExperienceMonths: requiredMonths,
	}
}

// offGateVacancy fails the geography gate against anchorCandidate.
func offGateVacancy(title string) types.VacancyProfile {
	v := vacancyScoring(title, 0)
	v.LocationCityID = "city-b"
	return v
}

func TestForCandidate_ThresholdFiltering(t *testing.T) {
	candidate := anchorCandidate()
	// Scores: 36/36 → 100; 36/60 → (1.8+2)/5 = 76; 36/90 → (1.2+2)/5 = 64.
	pool := []types.VacancyProfile{
		vacancyScoring("exact fit", 36),
		vacancyScoring("close fit", 60),
		vacancyScoring("stretch", 90),
	}

	entries := ForCandidate(candidate, pool, DefaultThreshold)

	require.Len(t, entries, 2)
	assert.Equal(t, "exact fit", entries[0].Vacancy.Title)
	assert.Equal(t, 100, entries[0].Score)
	assert.Equal(t, "close fit", entries[1].Vacancy.Title)
	assert.Equal(t, 76, entries[1].Score)
}

func TestForCandidate_ThresholdCutsBelowSeventy(t *testing.T) {
	candidate := anchorCandidate()
	// Required experience tuned so the pool scores 90, 71, 70, 69, 50.
	pool := []types.VacancyProfile{
		vacancyScoring("ninety", 43),
		vacancyScoring("seventy-one", 70),
		vacancyScoring("seventy", 72),
		vacancyScoring("sixty-nine", 75),
		vacancyScoring("fifty", 225),
	}

	entries := ForCandidate(candidate, pool, 70)

	require.Len(t, entries, 3)
	assert.Equal(t, []int{90, 71, 70}, []int{entries[0].Score, entries[1].Score, entries[2].Score})
	assert.Equal(t, []string{"ninety", "seventy-one", "seventy"},
		[]string{entries[0].Vacancy.Title, entries[1].Vacancy.Title, entries[2].Vacancy.Title})
}

func TestForCandidate_BoundaryScoreKept(t *testing.T) {
	candidate := anchorCandidate()
	// 36/72 → (1.5+2)/5 = 70: exactly at the threshold stays in.
	pool := []types.VacancyProfile{vacancyScoring("boundary", 72)}

	entries := ForCandidate(candidate, pool, 70)

	require.Len(t, entries, 1)
	assert.Equal(t, 70, entries[0].Score)

	assert.Empty(t, ForCandidate(candidate, pool, 71))
}

func TestForCandidate_GateFailuresDroppedEvenAtThresholdZero(t *testing.T) {
	candidate := anchorCandidate()
	pool := []types.VacancyProfile{
		offGateVacancy("wrong city"),
		vacancyScoring("reachable", 0),
	}

	entries := ForCandidate(candidate, pool, 0)

	require.Len(t, entries, 1)
	assert.Equal(t, "reachable", entries[0].Vacancy.Title)
}

func TestForCandidate_StableOrderOnTies(t *testing.T) {
	candidate := anchorCandidate()
	// Same requirements, same score; pool order must be preserved across calls.
	pool := []types.VacancyProfile{
		vacancyScoring("first", 60),
		vacancyScoring("second", 60),
		vacancyScoring("third", 60),
	}

	for i := 0; i < 5; i++ {
		entries := ForCandidate(candidate, pool, 0)
		require.Len(t, entries, 3)
		assert.Equal(t, "first", entries[0].Vacancy.Title)
		assert.Equal(t, "second", entries[1].Vacancy.Title)
		assert.Equal(t, "third", entries[2].Vacancy.Title)
	}
}

func TestForCandidate_SortsDescending(t *testing.T) {
	candidate := anchorCandidate()
	pool := []types.VacancyProfile{
		vacancyScoring("mid", 60),   // 76
		vacancyScoring("best", 36),  // 100
		vacancyScoring("worst", 90), // 64
	}

	entries := ForCandidate(candidate, pool, 0)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"best", "mid", "worst"},
		[]string{entries[0].Vacancy.Title, entries[1].Vacancy.Title, entries[2].Vacancy.Title})
}

func TestForCandidate_EmptyPool(t *testing.T) {
	assert.Empty(t, ForCandidate(anchorCandidate(), nil, DefaultThreshold))
}

func TestForVacancy_SameAlgorithmOppositeOrientation(t *testing.T) {
	vacancy := vacancyScoring("anchor", 36)
	pool := []types.CandidateProfile{
		{LocationCityID: "city-a", SalaryMin: 1000, ExperienceMonths: 36, EducationLevel: types.EducationMaster},
		{LocationCityID: "city-a", SalaryMin: 1000, ExperienceMonths: 18, EducationLevel: types.EducationMaster},
		{LocationCityID: "city-b", SalaryMin: 1000, ExperienceMonths: 36, EducationLevel: types.EducationMaster},
	}

	entries := ForVacancy(&vacancy, pool, 0)

	// The off-city candidate is gated out; the rest rank by experience fit.
	require.Len(t, entries, 2)
	assert.Equal(t, 100, entries[0].Score)
	assert.Equal(t, 36, entries[0].Candidate.ExperienceMonths)
	assert.Equal(t, 70, entries[1].Score) // (3*0.5 + 2) / 5 = 70
	assert.Equal(t, 18, entries[1].Candidate.ExperienceMonths)
}

func TestForVacancy_ThresholdAppliesToCandidates(t *testing.T) {
	vacancy := vacancyScoring("anchor", 36)
	pool := []types.CandidateProfile{
		{LocationCityID: "city-a", SalaryMin: 1000, ExperienceMonths: 18, EducationLevel: types.EducationMaster},
	}

	assert.Len(t, ForVacancy(&vacancy, pool, 70), 1)
	assert.Empty(t, ForVacancy(&vacancy, pool, 71))
}
