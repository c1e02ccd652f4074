package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kupranin/jobswipe/internal/types"
)

func TestSkillScore_FullCreditWhenMeetingOrExceeding(t *testing.T) {
	levels := []types.SkillLevel{types.SkillBeginner, types.SkillIntermediate, types.SkillAdvanced}

	// All nine combinations where user >= required must earn exactly 1.0.
	for _, user := range levels {
		for _, required := range levels {
			if user.Ordinal() >= required.Ordinal() {
				assert.Equal(t, 1.0, skillScore(user, required),
					"user %s vs required %s", user, required)
			}
		}
	}
}

func TestSkillScore_LinearPartialCredit(t *testing.T) {
	tests := []struct {
		name     string
		user     types.SkillLevel
		required types.SkillLevel
		expected float64
	}{
		{"beginner vs advanced", types.SkillBeginner, types.SkillAdvanced, 1.0 / 3.0},
		{"beginner vs intermediate", types.SkillBeginner, types.SkillIntermediate, 0.5},
		{"intermediate vs advanced", types.SkillIntermediate, types.SkillAdvanced, 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, skillScore(tt.user, tt.required), 1e-9)
		})
	}
}

func TestExperienceScore_NoRequirement(t *testing.T) {
	// requiredMonths <= 0 is automatically satisfied, even at zero experience.
	assert.Equal(t, 1.0, experienceScore(0, 0))
	assert.Equal(t, 1.0, experienceScore(24, 0))
	assert.Equal(t, 1.0, experienceScore(0, -1))
}

func TestExperienceScore_LinearRampCapped(t *testing.T) {
	tests := []struct {
		name     string
		user     int
		required int
		expected float64
	}{
		{"half of requirement", 12, 24, 0.5},
		{"exactly at requirement", 24, 24, 1.0},
		{"above requirement caps at 1", 48, 24, 1.0},
		{"no experience", 0, 24, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, experienceScore(tt.user, tt.required), 1e-9)
		})
	}
}

func TestEducationScore_MeetsOrExceeds(t *testing.T) {
	assert.Equal(t, 1.0, educationScore(types.EducationMaster, types.EducationMaster))
	assert.Equal(t, 1.0, educationScore(types.EducationPhD, types.EducationBachelor))
	assert.Equal(t, 1.0, educationScore(types.EducationNone, types.EducationNone))
}

func TestEducationScore_FixedPenalty(t *testing.T) {
	// Falling short is a flat 0.5 regardless of how far short.
	assert.Equal(t, 0.5, educationScore(types.EducationHighSchool, types.EducationMaster))
	assert.Equal(t, 0.5, educationScore(types.EducationNone, types.EducationPhD))
	assert.Equal(t, 0.5, educationScore(types.EducationMaster, types.EducationPhD))
}
