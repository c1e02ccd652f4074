package matching

import (
	"math"

	"github.com/kupranin/jobswipe/internal/types"
)

// Fixed weights for the non-skill segments. Vacancy skills carry their own
// declared weight (1-5).
const (
	experienceWeight = 3
	educationWeight  = 2
)

// segment is one weighted factor contributing to the aggregate score.
type segment struct {
	score  float64
	weight int
}

// Score computes the 0-100 match percentage for a pair. Pairs failing the
// compatibility gate score 0 without any segments being computed.
func Score(candidate *types.CandidateProfile, vacancy *types.VacancyProfile) int {
	score, _ := Evaluate(candidate, vacancy)
	return score
}

// Evaluate runs the gate once and, when it passes, the weighted aggregate.
// Callers that need to distinguish a failed gate from a genuine zero score
// (deck assembly drops the former and keeps the latter) use the bool.
// Rounding is half-up via math.Round; clamping happens here and only here,
// so callers never re-clamp.
func Evaluate(candidate *types.CandidateProfile, vacancy *types.VacancyProfile) (int, bool) {
	if !PassesGate(candidate, vacancy) {
		return 0, false
	}

	segments := make([]segment, 0, 2+len(vacancy.Skills))
	segments = append(segments,
		segment{experienceScore(candidate.ExperienceMonths, vacancy.RequiredExperienceMonths), experienceWeight},
		segment{educationScore(candidate.EducationLevel, vacancy.RequiredEducationLevel), educationWeight},
	)

	for _, required := range vacancy.Skills {
		score := 0.0
		if owned, ok := candidate.SkillByName(required.Name); ok {
			score = skillScore(owned.Level, required.Level)
		}
		segments = append(segments, segment{score, required.Weight})
	}

	return aggregate(segments), true
}

// aggregate combines segments as a weighted average scaled to [0,100].
func aggregate(segments []segment) int {
	weightedSum := 0.0
	totalWeight := 0
	for _, s := range segments {
		weightedSum += s.score * float64(s.weight)
		totalWeight += s.weight
	}

	// Cannot happen with the fixed experience/education weights, but a zero
	// weight sum means no requirements, which is a perfect match.
	if totalWeight <= 0 {
		return 100
	}

	return clamp(int(math.Round(weightedSum / float64(totalWeight) * 100)))
}

// clamp bounds a score to [0, 100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
