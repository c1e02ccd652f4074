// Package deck assembles ranked, threshold-filtered decks of counterpart
// profiles for the swipe UI. Both orientations (vacancies for a candidate,
// candidates for a vacancy) share a single algorithm: gate, score, filter,
// stable descending sort.
package deck

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kupranin/jobswipe/internal/matching"
	"github.com/kupranin/jobswipe/internal/types"
)

// DefaultThreshold is the product-policy minimum score for a deck entry.
// The threshold lives here, not in the aggregator: matching.Score always
// returns the true score.
const DefaultThreshold = 70

// maxConcurrency bounds parallel gate+score evaluation across pool entries.
// Each pair's computation is independent and side-effect-free.
const maxConcurrency = 8

// VacancyEntry is one vacancy in a candidate's deck, with its score attached.
type VacancyEntry struct {
	Vacancy types.VacancyProfile `json:"vacancy"`
	Score   int                  `json:"score"`
}

// CandidateEntry is one candidate in a vacancy's deck, with its score attached.
type CandidateEntry struct {
	Candidate types.CandidateProfile `json:"candidate"`
	Score     int                    `json:"score"`
}

// entry pairs a pool index with its computed score; -1 marks a gate failure.
type entry struct {
	index int
	score int
}

// evaluate runs gate+score for every pool entry in parallel, then filters and
// sorts. Gate failures are dropped entirely, not shown with score 0, so they
// stay out of decks even at threshold 0. The sort is stable: equal scores
// keep their pool order across repeated calls.
func evaluate(n int, score func(i int) (int, bool), threshold int) []entry {
	scores := make([]entry, n)
	var g errgroup.Group
	g.SetLimit(maxConcurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			s, passed := score(i)
			if !passed {
				s = -1
			}
			scores[i] = entry{index: i, score: s}
			return nil
		})
	}
	// The workers never return an error; Wait is only a barrier.
	_ = g.Wait()

	kept := make([]entry, 0, n)
	for _, e := range scores {
		if e.score >= 0 && e.score >= threshold {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	return kept
}

// ForCandidate ranks a pool of vacancies for one candidate.
func ForCandidate(candidate *types.CandidateProfile, pool []types.VacancyProfile, threshold int) []VacancyEntry {
	kept := evaluate(len(pool), func(i int) (int, bool) {
		return matching.Evaluate(candidate, &pool[i])
	}, threshold)

	result := make([]VacancyEntry, 0, len(kept))
	for _, e := range kept {
		result = append(result, VacancyEntry{Vacancy: pool[e.index], Score: e.score})
	}
	return result
}

// ForVacancy ranks a pool of candidates for one vacancy.
func ForVacancy(vacancy *types.VacancyProfile, pool []types.CandidateProfile, threshold int) []CandidateEntry {
	kept := evaluate(len(pool), func(i int) (int, bool) {
		return matching.Evaluate(&pool[i], vacancy)
	}, threshold)

	result := make([]CandidateEntry, 0, len(kept))
	for _, e := range kept {
		result = append(result, CandidateEntry{Candidate: pool[e.index], Score: e.score})
	}
	return result
}
