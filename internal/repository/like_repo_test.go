package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&db.User{}, &db.Like{}, &db.Match{}, &db.Message{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestRecordLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	require.NoError(t, repo.RecordLike(ctx, 1, 2))
	require.NoError(t, repo.RecordLike(ctx, 1, 2))

	var count int64
	require.NoError(t, dbase.Model(&db.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHasLikeIsDirectional(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	require.NoError(t, repo.RecordLike(ctx, 1, 2))

	has, err := repo.HasLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasLike(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLikedIDs(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	require.NoError(t, repo.RecordLike(ctx, 1, 2))
	require.NoError(t, repo.RecordLike(ctx, 1, 3))
	require.NoError(t, repo.RecordLike(ctx, 9, 1)) // someone else's like

	set, err := repo.LikedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Contains(t, set, uint64(2))
	assert.Contains(t, set, uint64(3))
}

func TestCountLikers(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	require.NoError(t, repo.RecordLike(ctx, 1, 9))
	require.NoError(t, repo.RecordLike(ctx, 2, 9))
	require.NoError(t, repo.RecordLike(ctx, 2, 9)) // repeat must not double-count

	count, err := repo.CountLikers(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
