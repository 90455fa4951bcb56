package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/club-events-service/internal/events"
)

// Cache keys for the public listing endpoints.
const (
	KeyEventsList        = "listings:events"
	KeyAnnouncementsList = "listings:announcements"
)

// ListingCache keeps serialized listing responses in redis for a short TTL.
// All redis failures degrade to cache misses; reads always fall through to
// the store when the cache is unreachable.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache builds the cache. A nil client disables caching.
func NewListingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{client: client, ttl: ttl, logger: logger}
}

// Get loads a cached listing into dest, reporting whether it was present.
func (lc *ListingCache) Get(ctx context.Context, key string, dest any) bool {
	if lc == nil || lc.client == nil {
		return false
	}
	raw, err := lc.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			lc.logger.Warn("listing cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		lc.logger.Warn("listing cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores a listing under key.
func (lc *ListingCache) Set(ctx context.Context, key string, value any) {
	if lc == nil || lc.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		lc.logger.Warn("listing cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := lc.client.Set(ctx, key, raw, lc.ttl).Err(); err != nil {
		lc.logger.Warn("listing cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given keys.
func (lc *ListingCache) Invalidate(ctx context.Context, keys ...string) {
	if lc == nil || lc.client == nil || len(keys) == 0 {
		return
	}
	if err := lc.client.Del(ctx, keys...).Err(); err != nil {
		lc.logger.Warn("listing cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// RegisterHandlers subscribes cache invalidation to content publications.
func (lc *ListingCache) RegisterHandlers(dispatcher events.Dispatcher) {
	if lc == nil || dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventEventPublished, func(ctx context.Context, _ events.Event) error {
		lc.Invalidate(ctx, KeyEventsList)
		return nil
	})
	dispatcher.Subscribe(events.EventAnnouncementPublished, func(ctx context.Context, _ events.Event) error {
		lc.Invalidate(ctx, KeyAnnouncementsList)
		return nil
	})
}
