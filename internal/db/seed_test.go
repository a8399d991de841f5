package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/utils/pairkey"
)

// TestSeedTestData runs the demo seeder against in-memory SQLite and checks
// the invariants the engine relies on: canonical pair keys, matches backed
// by mutual likes, and at most one opening message per conversation.
func TestSeedTestData(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&db.User{}, &db.Like{}, &db.Match{}, &db.Message{}))

	require.NoError(t, db.SeedTestData(database))

	var users []db.User
	require.NoError(t, database.Find(&users).Error)
	assert.Len(t, users, 20)

	var matches []db.Match
	require.NoError(t, database.Find(&matches).Error)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		a, b, err := pairkey.Split(m.PairKey)
		require.NoError(t, err, "pair key %q must be canonical", m.PairKey)
		assert.Equal(t, a, m.UserA)
		assert.Equal(t, b, m.UserB)

		// a match implies both directional likes
		for _, pair := range [][2]uint64{{a, b}, {b, a}} {
			var n int64
			require.NoError(t, database.Model(&db.Like{}).
				Where("from_id = ? AND to_id = ?", pair[0], pair[1]).
				Count(&n).Error)
			assert.Equal(t, int64(1), n, "match %s missing like %d -> %d", m.PairKey, pair[0], pair[1])
		}
	}

	// exactly one opening message per seeded conversation, even when the
	// same pair was forced mutual more than once
	var msgs []db.Message
	require.NoError(t, database.Find(&msgs).Error)
	perPair := make(map[string]int)
	for _, msg := range msgs {
		perPair[msg.PairKey]++
		assert.Equal(t, int64(1), msg.Seq)
	}
	for key, n := range perPair {
		assert.Equal(t, 1, n, "conversation %s has %d opening messages", key, n)
	}
}
