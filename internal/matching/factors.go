package matching

import "github.com/kupranin/jobswipe/internal/types"

// educationPenalty is the fixed score for falling short of the required
// education level. The education enum has no meaningful distance metric, so a
// shortfall earns a flat penalty rather than proportional credit.
const educationPenalty = 0.5

// skillScore computes partial credit for one skill requirement. Meeting or
// exceeding the required level earns full credit; exceeding it is not rewarded
// further. Below the bar, credit is linear in the ordinal ratio.
func skillScore(userLevel, requiredLevel types.SkillLevel) float64 {
	user := userLevel.Ordinal()
	required := requiredLevel.Ordinal()
	if required <= 0 {
		return 1.0
	}
	if user >= required {
		return 1.0
	}
	return float64(user) / float64(required)
}

// experienceScore computes credit for the experience requirement as a linear
// ramp capped at 1. No requirement is automatically satisfied.
func experienceScore(userMonths, requiredMonths int) float64 {
	if requiredMonths <= 0 {
		return 1.0
	}
	score := float64(userMonths) / float64(requiredMonths)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// educationScore compares education ranks. Meeting or exceeding the
// requirement earns full credit; falling short earns the fixed penalty.
func educationScore(userLevel, requiredLevel types.EducationLevel) float64 {
	if userLevel.Rank() >= requiredLevel.Rank() {
		return 1.0
	}
	return educationPenalty
}
