package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/deck"
)

func user(id uint64, name string, age int, gender, interestedIn string) db.User {
	return db.User{ID: id, Name: name, Age: age, Gender: gender, InterestedIn: interestedIn}
}

func TestScoreTerms(t *testing.T) {
	viewer := user(1, "Viewer", 25, db.GenderMale, db.GenderFemale)

	// 24yo female interested in males: 9 + 20 + 20
	ann := user(2, "Ann", 24, db.GenderFemale, db.GenderMale)
	assert.Equal(t, 49, deck.Score(ann, viewer))

	// 40yo female interested in everyone: 0 (age gap 15) + 20 + 0
	bo := user(3, "Bo", 40, db.GenderFemale, db.InterestedInEveryone)
	assert.Equal(t, 20, deck.Score(bo, viewer))
}

func TestScoreEveryoneNeverMatchesAGender(t *testing.T) {
	// "everyone" is an interest value, not a gender, so it never satisfies
	// the candidate.gender == viewer.interestedIn term.
	viewer := user(1, "Viewer", 30, db.GenderFemale, db.InterestedInEveryone)
	cand := user(2, "Cand", 30, db.GenderMale, db.GenderFemale)
	// 10 (age) + 0 (viewer wants everyone) + 20 (cand wants females)
	assert.Equal(t, 30, deck.Score(cand, viewer))
}

func TestScoreRange(t *testing.T) {
	genders := []string{db.GenderMale, db.GenderFemale, db.GenderOther}
	interests := []string{db.GenderMale, db.GenderFemale, db.GenderOther, db.InterestedInEveryone}

	for _, g1 := range genders {
		for _, i1 := range interests {
			for _, g2 := range genders {
				for _, i2 := range interests {
					for _, age := range []int{18, 25, 60} {
						a := user(1, "A", age, g1, i1)
						b := user(2, "B", 30, g2, i2)
						s := deck.Score(a, b)
						assert.GreaterOrEqual(t, s, 0)
						assert.LessOrEqual(t, s, 50)
					}
				}
			}
		}
	}
}

func TestBuildExcludesSelfLikedAndMatched(t *testing.T) {
	viewer := user(1, "Viewer", 25, db.GenderMale, db.GenderFemale)
	all := []db.User{
		viewer,
		user(2, "Liked", 25, db.GenderFemale, db.GenderMale),
		user(3, "Matched", 25, db.GenderFemale, db.GenderMale),
		user(4, "Fresh", 25, db.GenderFemale, db.GenderMale),
		user(5, "WrongGender", 25, db.GenderMale, db.GenderFemale),
	}

	got := deck.Build(viewer, all,
		map[uint64]struct{}{2: {}},
		map[uint64]struct{}{3: {}},
		0,
	)

	assert.Len(t, got, 1)
	assert.Equal(t, uint64(4), got[0].User.ID)
}

func TestBuildEveryoneSkipsGenderFilter(t *testing.T) {
	viewer := user(1, "Viewer", 25, db.GenderOther, db.InterestedInEveryone)
	all := []db.User{
		user(2, "M", 25, db.GenderMale, db.InterestedInEveryone),
		user(3, "F", 25, db.GenderFemale, db.InterestedInEveryone),
		user(4, "O", 25, db.GenderOther, db.InterestedInEveryone),
	}

	got := deck.Build(viewer, all, nil, nil, 0)
	assert.Len(t, got, 3)
}

func TestBuildRankingAndStableTies(t *testing.T) {
	viewer := user(1, "Viewer", 25, db.GenderMale, db.GenderFemale)
	ann := user(2, "Ann", 24, db.GenderFemale, db.GenderMale)
	bo := user(3, "Bo", 40, db.GenderFemale, db.InterestedInEveryone)
	// cy ties with bo (same age gap trick: 20 points from term A only)
	cy := user(4, "Cy", 40, db.GenderFemale, db.InterestedInEveryone)

	got := deck.Build(viewer, []db.User{bo, cy, ann}, nil, nil, 0)

	assert.Equal(t, "Ann", got[0].User.Name)
	assert.Equal(t, 49, got[0].Score)
	// ties keep input order: bo before cy
	assert.Equal(t, "Bo", got[1].User.Name)
	assert.Equal(t, "Cy", got[2].User.Name)
}

func TestBuildLimit(t *testing.T) {
	viewer := user(1, "Viewer", 25, db.GenderMale, db.InterestedInEveryone)
	all := []db.User{
		user(2, "A", 25, db.GenderFemale, db.GenderMale),
		user(3, "B", 26, db.GenderFemale, db.GenderMale),
		user(4, "C", 27, db.GenderFemale, db.GenderMale),
	}

	got := deck.Build(viewer, all, nil, nil, 2)
	assert.Len(t, got, 2)
}
