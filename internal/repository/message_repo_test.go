package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NissanXoX/LinkApp/internal/db"
)

// white-box tests: the store clock is swapped out to drive timestamp edge
// cases that wall time can't reproduce reliably.

func setupMessageRepo(t *testing.T) *MessageRepository {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&db.Message{}))
	return NewMessageRepository(database)
}

func TestAppendRejectsEmptyText(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	_, err := repo.Append(ctx, "1_2", 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	msgs, err := repo.ListOrdered(ctx, "1_2")
	require.NoError(t, err)
	assert.Empty(t, msgs, "rejected append must not write")
}

func TestAppendTrimsText(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	msg, err := repo.Append(ctx, "1_2", 1, "  hi there  ")
	require.NoError(t, err)
	assert.Equal(t, "hi there", msg.Text)
	assert.False(t, msg.Seen)
}

func TestAppendClampsRegressingClock(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	clock := base
	repo.now = func() time.Time { return clock }

	first, err := repo.Append(ctx, "1_2", 1, "first")
	require.NoError(t, err)

	// clock jumps backwards between appends
	clock = base.Add(-time.Minute)
	second, err := repo.Append(ctx, "1_2", 2, "second")
	require.NoError(t, err)

	assert.False(t, second.SentAt.Before(first.SentAt), "timestamps must never decrease")
	assert.Equal(t, first.Seq+1, second.Seq)

	msgs, err := repo.ListOrdered(ctx, "1_2")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text, "tied timestamps keep append order via seq")
}

func TestListOrderedAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	for _, text := range []string{"a", "b", "c"} {
		_, err := repo.Append(ctx, "1_2", 1, text)
		require.NoError(t, err)
	}
	// a different conversation must not leak in
	_, err := repo.Append(ctx, "3_4", 3, "other")
	require.NoError(t, err)

	msgs, err := repo.ListOrdered(ctx, "1_2")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "a", msgs[0].Text)
	assert.Equal(t, "c", msgs[2].Text)

	latest, err := repo.Latest(ctx, "1_2")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "c", latest.Text)

	latest, err = repo.Latest(ctx, "9_10")
	require.NoError(t, err)
	assert.Nil(t, latest, "empty conversation has no latest message")
}

func TestListPagePaginates(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	texts := []string{"m1", "m2", "m3", "m4", "m5"}
	for _, text := range texts {
		_, err := repo.Append(ctx, "1_2", 1, text)
		require.NoError(t, err)
	}

	var got []string
	var token *string
	for {
		page, next, err := repo.ListPage(ctx, "1_2", token, 2)
		require.NoError(t, err)
		for _, m := range page {
			got = append(got, m.Text)
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, texts, got)
}

func TestMarkSeenIsOneWay(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	msg, err := repo.Append(ctx, "1_2", 1, "hello")
	require.NoError(t, err)

	require.NoError(t, repo.MarkSeen(ctx, "1_2", msg.ID))
	// repeat is a no-op, not an error
	require.NoError(t, repo.MarkSeen(ctx, "1_2", msg.ID))

	latest, err := repo.Latest(ctx, "1_2")
	require.NoError(t, err)
	assert.True(t, latest.Seen)

	// unknown message, and the right message in the wrong conversation
	assert.ErrorIs(t, repo.MarkSeen(ctx, "1_2", "nope"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.MarkSeen(ctx, "3_4", msg.ID), gorm.ErrRecordNotFound)
}

// TestAppendConcurrentWritersKeepTotalOrder races several writers into one
// conversation and checks the stored sequence numbers stay unique and
// gapless. The locked last-row read is what carries this on MySQL; SQLite
// serializes writers itself, so the pool is pinned to one connection to keep
// the test deterministic.
func TestAppendConcurrentWritersKeepTotalOrder(t *testing.T) {
	ctx := context.Background()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(&db.Message{}))
	repo := NewMessageRepository(database)

	const writers = 4
	const perWriter = 5

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := repo.Append(ctx, "1_2", uint64(w+1), fmt.Sprintf("w%d-%d", w, i)); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	msgs, err := repo.ListOrdered(ctx, "1_2")
	require.NoError(t, err)
	require.Len(t, msgs, writers*perWriter)

	seen := make(map[int64]bool, len(msgs))
	for i, m := range msgs {
		assert.False(t, seen[m.Seq], "duplicate seq %d", m.Seq)
		seen[m.Seq] = true
		assert.Equal(t, int64(i+1), m.Seq, "seq must be gapless in display order")
		if i > 0 {
			assert.False(t, m.SentAt.Before(msgs[i-1].SentAt))
		}
	}
}

func TestDeleteConversationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := setupMessageRepo(t)

	_, err := repo.Append(ctx, "1_2", 1, "bye")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteConversation(ctx, "1_2"))
	require.NoError(t, repo.DeleteConversation(ctx, "1_2"))

	msgs, err := repo.ListOrdered(ctx, "1_2")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
