// Package deck builds the ranked swipe deck for a viewer. Everything here is
// pure: profiles in, scored candidates out, no store access and no error
// paths (profiles are filtered, never rejected).
package deck

import (
	"sort"

	"github.com/NissanXoX/LinkApp/internal/db"
)

// ScoredProfile is one deck entry: a candidate plus its compatibility score.
type ScoredProfile struct {
	User  db.User
	Score int
}

// Score computes the compatibility of candidate as seen by viewer.
//
// Terms:
//   - age closeness: max(0, 10 - |candidate.age - viewer.age|)
//   - +20 when the candidate's gender is what the viewer is interested in
//   - +20 when the candidate is interested in the viewer's gender
//
// Each term is capped individually, so the total ranges over [0, 50]. The
// orientation terms mirror each other, which makes the score symmetric:
// Score(a, b) == Score(b, a).
func Score(candidate, viewer db.User) int {
	score := 0

	diff := candidate.Age - viewer.Age
	if diff < 0 {
		diff = -diff
	}
	if diff < 10 {
		score += 10 - diff
	}

	if candidate.Gender == viewer.InterestedIn {
		score += 20
	}
	if candidate.InterestedIn == viewer.Gender {
		score += 20
	}
	return score
}

// Build produces the viewer's deck from the full profile set.
//
// Excluded: the viewer itself, candidates whose gender does not match the
// viewer's interest (no gender filter when the viewer is interested in
// everyone), and anyone already liked or matched. The result is sorted by
// score descending; ties keep the input enumeration order, so equal-score
// decks are deterministic. limit <= 0 means no limit.
func Build(
	viewer db.User,
	all []db.User,
	liked map[uint64]struct{},
	matched map[uint64]struct{},
	limit int,
) []ScoredProfile {
	candidates := make([]ScoredProfile, 0, len(all))
	for _, u := range all {
		if u.ID == viewer.ID {
			continue
		}
		if viewer.InterestedIn != db.InterestedInEveryone && u.Gender != viewer.InterestedIn {
			continue
		}
		if _, ok := liked[u.ID]; ok {
			continue
		}
		if _, ok := matched[u.ID]; ok {
			continue
		}
		candidates = append(candidates, ScoredProfile{User: u, Score: Score(u, viewer)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
