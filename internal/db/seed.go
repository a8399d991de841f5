package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NissanXoX/LinkApp/internal/utils/pairkey"
)

var seedBios = []string{
	"Coffee first, questions later.",
	"Looking for someone to share playlists with.",
	"Part-time hiker, full-time foodie.",
	"Ask me about my bookshelf.",
	"Here for the plot.",
}

var seedHobbies = []string{
	"hiking, photography",
	"cooking, board games",
	"climbing, cinema",
	"reading, running",
	"music, travel",
}

var seedPreferences = []string{"long-term", "short-term", "one-night", "friend"}

// SeedTestData resets the database and populates it with demo users, likes,
// the matches those likes imply, and a few opening messages.
//
// Behavior:
//  1. Clears existing data in all engine tables.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords and
//     complete profiles.
//  3. Generates ~200 likes with ~70% like probability; every 3rd pair is
//     forced mutual, and mutual pairs get a Match row plus an opening message.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"messages", "matches", "likes", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	// --- Seed Users (10 male, 10 female) ---
	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender := GenderMale
		interestedIn := GenderFemale
		if i > 10 {
			gender = GenderFemale
			interestedIn = GenderMale
		}
		// a few users are open to everyone
		if i%7 == 0 {
			interestedIn = InterestedInEveryone
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
			Name:         fmt.Sprintf("User %d", i),
			Age:          20 + r.Intn(20),
			Gender:       gender,
			InterestedIn: interestedIn,
			Bio:          seedBios[r.Intn(len(seedBios))],
			Hobbies:      seedHobbies[r.Intn(len(seedHobbies))],
			Preference:   seedPreferences[r.Intn(len(seedPreferences))],
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Println("Seeded 20 users.")

	// --- Seed Likes (~200), Matches for mutual pairs, opening messages ---
	counter := 0
	for fromID := 1; fromID <= 20; fromID++ {
		for j := 0; j < 12; j++ { // each user swipes on ~12 others
			toID := uint64(r.Intn(20) + 1)
			if uint64(fromID) == toID {
				continue
			}

			var from, to User
			if err := db.First(&from, fromID).Error; err != nil {
				continue
			}
			if err := db.First(&to, toID).Error; err != nil {
				continue
			}
			if from.Gender == to.Gender {
				continue
			}

			// like probability 70%
			if r.Intn(100) >= 70 {
				continue
			}

			like := Like{FromID: uint64(fromID), ToID: toID}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
			}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				recip := Like{FromID: toID, ToID: uint64(fromID)}
				db.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
					DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
				}).Create(&recip)

				key := pairkey.For(uint64(fromID), toID)
				a, b, _ := pairkey.Split(key)
				match := Match{PairKey: key, UserA: a, UserB: b}
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&match)

				// one opening message per conversation, even when the same
				// pair is forced mutual twice
				var existing int64
				db.Model(&Message{}).Where("pair_key = ?", key).Count(&existing)
				if existing == 0 {
					msg := Message{
						ID:       uuid.NewString(),
						PairKey:  key,
						Seq:      1,
						SenderID: uint64(fromID),
						Text:     "Hey! We matched 🎉",
						SentAt:   time.Now().Add(-time.Duration(r.Intn(48)) * time.Hour),
					}
					db.Create(&msg)
				}
			}

			counter++
		}
	}

	return nil
}
