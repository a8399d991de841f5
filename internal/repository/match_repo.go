package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/utils/pairkey"
)

// MatchRepository stores one Match row per unordered user pair, keyed by the
// canonical pair key.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent conditionally creates the match for {a, b}.
//
// Both sides of a simultaneous mutual swipe race into this call with the
// same deterministic PK; the insert-or-ignore means exactly one caller
// observes created == true. The other gets created == false with no error,
// which callers treat as success (the match already exists).
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, a, b uint64) (bool, db.Match, error) {
	key := pairkey.For(a, b)
	lo, hi, err := pairkey.Split(key)
	if err != nil {
		return false, db.Match{}, err
	}

	match := db.Match{PairKey: key, UserA: lo, UserB: hi}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&match)
	if res.Error != nil {
		return false, db.Match{}, res.Error
	}
	if res.RowsAffected == 0 {
		// lost the race; hand back the existing row
		existing, err := r.Get(ctx, key)
		if err != nil {
			return false, db.Match{}, err
		}
		return false, existing, nil
	}
	return true, match, nil
}

// Get fetches the match at the given pair key.
// Returns gorm.ErrRecordNotFound when the pair is not matched.
func (r *MatchRepository) Get(ctx context.Context, key string) (db.Match, error) {
	var match db.Match
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", key).
		First(&match).Error
	return match, err
}

// ListForUser returns every match the user participates in, newest first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID uint64) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("created_at DESC, pair_key").
		Find(&matches).Error
	return matches, err
}

// MatchedIDs returns the set of users the given user is matched with.
// Used by the candidate filter.
func (r *MatchRepository) MatchedIDs(ctx context.Context, userID uint64) (map[uint64]struct{}, error) {
	matches, err := r.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(matches))
	for _, m := range matches {
		if other, ok := pairkey.Other(m.PairKey, userID); ok {
			set[other] = struct{}{}
		}
	}
	return set, nil
}

// Delete removes the match at the given key. Deleting an absent match is a
// no-op; the bool reports whether a row was actually removed.
func (r *MatchRepository) Delete(ctx context.Context, key string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("pair_key = ?", key).
		Delete(&db.Match{})
	return res.RowsAffected > 0, res.Error
}
