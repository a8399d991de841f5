package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/utils/pagination"
)

// ErrEmptyText is returned by Append when the message text is empty after
// trimming. No write happens in that case.
var ErrEmptyText = errors.New("message text must not be empty")

// MessageRepository is the append-only, per-conversation ordered message log.
type MessageRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:  database,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Append validates and stores a message in the given conversation.
//
// SentAt is assigned store-side and clamped inside the transaction so it
// never goes below the conversation's current maximum, even when the caller's
// clock lags. Seq increments per conversation and breaks timestamp ties, so
// display order always matches append order. The last-row read takes a row
// lock (SELECT ... FOR UPDATE); under REPEATABLE READ two concurrent appends
// would otherwise both see the same last row and commit duplicate
// (sent_at, seq) pairs. SQLite ignores the locking clause and serializes
// writers on its own.
func (r *MessageRepository) Append(ctx context.Context, pairKey string, senderID uint64, text string) (db.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return db.Message{}, ErrEmptyText
	}

	var msg db.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sentAt := r.now().Truncate(time.Millisecond)
		var seq int64 = 1

		var last db.Message
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pair_key = ?", pairKey).
			Order("sent_at DESC, seq DESC").
			First(&last).Error
		switch {
		case err == nil:
			if sentAt.Before(last.SentAt) {
				sentAt = last.SentAt
			}
			seq = last.Seq + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first message of the conversation
		default:
			return err
		}

		msg = db.Message{
			ID:       uuid.NewString(),
			PairKey:  pairKey,
			Seq:      seq,
			SenderID: senderID,
			Text:     text,
			SentAt:   sentAt,
			Seen:     false,
		}
		return tx.Create(&msg).Error
	})
	if err != nil {
		return db.Message{}, err
	}
	return msg, nil
}

// ListOrdered returns the full thread ascending by (sent_at, seq).
func (r *MessageRepository) ListOrdered(ctx context.Context, pairKey string) ([]db.Message, error) {
	var msgs []db.Message
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", pairKey).
		Order("sent_at ASC, seq ASC").
		Find(&msgs).Error
	return msgs, err
}

// ListPage returns one ascending page of the thread plus a cursor for the
// next page, or a nil cursor on the last page.
func (r *MessageRepository) ListPage(
	ctx context.Context,
	pairKey string,
	paginationToken *string,
	limit int,
) ([]db.Message, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("pair_key = ?", pairKey).
		Order("sent_at ASC, seq ASC").
		Limit(limit + 1)

	if cursor.SentUnix > 0 {
		ts := time.UnixMilli(cursor.SentUnix)
		query = query.Where(
			"(sent_at > ? OR (sent_at = ? AND seq > ?))",
			ts, ts, cursor.Seq,
		)
	}

	var msgs []db.Message
	if err := query.Find(&msgs).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(msgs) > limit {
		last := msgs[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			SentUnix: last.SentAt.UnixMilli(),
			Seq:      last.Seq,
		})
		nextToken = &token
		msgs = msgs[:limit]
	}

	return msgs, nextToken, nil
}

// Latest returns the most recent message of the conversation, or nil when
// the conversation has no messages yet.
func (r *MessageRepository) Latest(ctx context.Context, pairKey string) (*db.Message, error) {
	var msg db.Message
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", pairKey).
		Order("sent_at DESC, seq DESC").
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkSeen flips the seen flag of one message. The transition is one-way:
// marking an already-seen message is a no-op. Returns
// gorm.ErrRecordNotFound when the message does not exist in that
// conversation.
func (r *MessageRepository) MarkSeen(ctx context.Context, pairKey, messageID string) error {
	var msg db.Message
	err := r.db.WithContext(ctx).
		Where("pair_key = ? AND id = ?", pairKey, messageID).
		First(&msg).Error
	if err != nil {
		return err
	}
	if msg.Seen {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("id = ?", msg.ID).
		Update("seen", true).Error
}

// DeleteConversation removes every message of the conversation. Idempotent.
func (r *MessageRepository) DeleteConversation(ctx context.Context, pairKey string) error {
	return r.db.WithContext(ctx).
		Where("pair_key = ?", pairKey).
		Delete(&db.Message{}).Error
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
