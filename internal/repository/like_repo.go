package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NissanXoX/LinkApp/internal/db"
)

// LikeRepository is the durable ledger of directional interest events.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// RecordLike upserts the like from -> to.
//
// Behavior:
//   - If the (from_id, to_id) pair exists → the row's updated_at is refreshed.
//   - If it doesn't exist → a new row is inserted.
//   - Composite PK ensures at most one row per ordered pair, so repeated
//     calls are idempotent.
func (r *LikeRepository) RecordLike(ctx context.Context, fromID, toID uint64) error {
	like := db.Like{
		FromID: fromID,
		ToID:   toID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).
		Create(&like).Error
}

// HasLike reports whether from has liked to. O(1) point lookup on the PK;
// used for the reciprocal check after every recorded like.
func (r *LikeRepository) HasLike(ctx context.Context, fromID, toID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Count(&count).Error
	return count > 0, err
}

// LikedIDs returns the set of users the given user has liked.
// Used by the candidate filter to keep already-swiped profiles out of the deck.
func (r *LikeRepository) LikedIDs(ctx context.Context, fromID uint64) (map[uint64]struct{}, error) {
	var targets []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_id = ?", fromID).
		Pluck("to_id", &targets).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(targets))
	for _, id := range targets {
		set[id] = struct{}{}
	}
	return set, nil
}

// CountLikers returns how many users liked the given recipient.
// Used in conjunction with the Redis counter cache (DB is fallback).
func (r *LikeRepository) CountLikers(ctx context.Context, toID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("to_id = ?", toID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
