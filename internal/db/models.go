package db

import (
	"time"
)

// Gender / interest values stored on users.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	InterestedInEveryone = "everyone"
)

// User table. Profile fields are owned by the profile/onboarding flow;
// this engine only ever reads them.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time

	Name         string `gorm:"size:64;not null"`
	Age          int    `gorm:"not null"`
	Gender       string `gorm:"size:16;not null"`
	InterestedIn string `gorm:"size:16;not null"`
	Bio          string `gorm:"size:512"`
	Hobbies      string `gorm:"size:256"`
	ImageURL     string `gorm:"size:512"`
	Preference   string `gorm:"size:16"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Like is a directional interest record (swipe right) from one user to
// another.
//
// Composite PK: (FromID, ToID)
//   - At most one row per ordered pair; re-liking overwrites instead of
//     duplicating.
//
// Rows are retained even after a match is dissolved, which keeps the pair
// out of each other's future decks.
type Like struct {
	FromID    uint64    `gorm:"primaryKey;index:idx_to_from,priority:2"`
	ToID      uint64    `gorm:"primaryKey;index:idx_to_from,priority:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Match is the mutual-like record for an unordered user pair.
//
// PairKey is the canonical "min_max" identifier; UserA < UserB always. The
// key is deterministic on both sides of the pair, so concurrent detectors
// racing to create the same match collide on the PK instead of creating
// duplicates. PairKey also identifies the pair's conversation.
type Match struct {
	PairKey   string    `gorm:"primaryKey;size:64"`
	UserA     uint64    `gorm:"not null;index"`
	UserB     uint64    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Message belongs to exactly one conversation (PairKey). SentAt is assigned
// by the store and never decreases within a conversation; Seq breaks ties
// between messages sharing a timestamp.
type Message struct {
	ID       string    `gorm:"primaryKey;size:36"`
	PairKey  string    `gorm:"size:64;not null;index:idx_pair_sent,priority:1"`
	Seq      int64     `gorm:"not null;index:idx_pair_sent,priority:3"`
	SenderID uint64    `gorm:"not null"`
	Text     string    `gorm:"size:2048;not null"`
	SentAt   time.Time `gorm:"not null;index:idx_pair_sent,priority:2"`
	Seen     bool      `gorm:"not null;default:false"`
}
