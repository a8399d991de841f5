package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NissanXoX/LinkApp/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

// KeyForLikeCount generates Redis key for a user's liked-you count
func (c *RedisCache) KeyForLikeCount(userID uint64) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

func (c *RedisCache) UpdateLikeCount(ctx context.Context, userID uint64, count int64) error {
	// Always refresh TTL when updating
	return c.Set(ctx, c.KeyForLikeCount(userID), count, time.Hour)
}

// GetLikeCount reads the cached liked-you count. found is false on a cache
// miss (which a cached zero is not) and on an unparseable value, so callers
// can fall back to the DB. A hit refreshes the TTL.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID uint64) (count int64, found bool, err error) {
	key := c.KeyForLikeCount(userID)
	val, err := c.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// treat garbage as a miss so the DB rebuilds the key
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, time.Hour).Err()
	return n, true, nil
}

// IncrLikeCount bumps the liked-you counter, but only when the key is warm.
// A cold key stays cold and is rebuilt from the DB on the next GetLikeCount
// miss, which keeps the counter from being seeded below the real count.
func (c *RedisCache) IncrLikeCount(ctx context.Context, userID uint64) error {
	key := c.KeyForLikeCount(userID)
	n, err := c.Client.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	if _, err := c.Incr(ctx, key); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, time.Hour).Err()
}

//
// Pub/sub event bus. Watch-style reads subscribe to these channels and
// re-read their snapshot whenever a signal arrives; writers publish after
// every durable write. Payloads are just the event kind, never data — the
// DB stays the single source of truth.
//

// Event kinds published on conversation and user channels.
const (
	EventMessage     = "message"
	EventSeen        = "seen"
	EventMatchFormed = "match_formed"
	EventUnmatch     = "unmatch"
)

// KeyForConversationEvents generates the channel name for one conversation.
func (c *RedisCache) KeyForConversationEvents(pairKey string) string {
	return "chat:events:" + pairKey
}

// KeyForUserEvents generates the channel name for one user's chat-list feed.
func (c *RedisCache) KeyForUserEvents(userID uint64) string {
	return fmt.Sprintf("user:events:%d", userID)
}

// PublishConversationEvent signals watchers of a single conversation.
func (c *RedisCache) PublishConversationEvent(ctx context.Context, pairKey, kind string) error {
	return c.Client.Publish(ctx, c.KeyForConversationEvents(pairKey), kind).Err()
}

// PublishUserEvent signals watchers of a user's chat list.
func (c *RedisCache) PublishUserEvent(ctx context.Context, userID uint64, kind string) error {
	return c.Client.Publish(ctx, c.KeyForUserEvents(userID), kind).Err()
}

// SubscribeConversationEvents opens a subscription for one conversation.
// The caller owns the returned PubSub and must Close it.
func (c *RedisCache) SubscribeConversationEvents(ctx context.Context, pairKey string) *redis.PubSub {
	return c.Client.Subscribe(ctx, c.KeyForConversationEvents(pairKey))
}

// SubscribeUserEvents opens a subscription for one user's chat-list feed.
// The caller owns the returned PubSub and must Close it.
func (c *RedisCache) SubscribeUserEvents(ctx context.Context, userID uint64) *redis.PubSub {
	return c.Client.Subscribe(ctx, c.KeyForUserEvents(userID))
}
