package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/repository"
)

func TestCreateIfAbsentWinsOnce(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	// both sides of the pair race in, in opposite argument order
	created1, m1, err := repo.CreateIfAbsent(ctx, 10, 2)
	require.NoError(t, err)
	created2, m2, err := repo.CreateIfAbsent(ctx, 2, 10)
	require.NoError(t, err)

	assert.True(t, created1)
	assert.False(t, created2, "second creator must observe already-exists as success")
	assert.Equal(t, "2_10", m1.PairKey)
	assert.Equal(t, m1.PairKey, m2.PairKey)

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListForUserAndMatchedIDs(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	_, _, err := repo.CreateIfAbsent(ctx, 1, 2)
	require.NoError(t, err)
	_, _, err = repo.CreateIfAbsent(ctx, 3, 1)
	require.NoError(t, err)
	_, _, err = repo.CreateIfAbsent(ctx, 2, 3) // does not involve user 1
	require.NoError(t, err)

	matches, err := repo.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	set, err := repo.MatchedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Contains(t, set, uint64(2))
	assert.Contains(t, set, uint64(3))
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	_, m, err := repo.CreateIfAbsent(ctx, 1, 2)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, m.PairKey)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, m.PairKey)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Get(ctx, m.PairKey)
	assert.Error(t, err)
}
