package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lingges29/mypark/internal/service/analytics/models"
)

// snapshotKey is the single Redis key holding the analytics snapshot
const snapshotKey = "mypark:analytics:snapshot"

// RedisCache stores the analytics snapshot in Redis with a short TTL.
// Booking writes delete the key, so admins never read aggregates older
// than the TTL or the last write.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a snapshot cache on top of a Redis client
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot or ErrCacheMiss
func (c *RedisCache) Get(ctx context.Context) (*models.AnalyticsResponse, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("analytics cache: get snapshot: %w", err)
	}

	var snapshot models.AnalyticsResponse
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("analytics cache: decode snapshot: %w", err)
	}

	return &snapshot, nil
}

// Set stores the snapshot for the configured TTL
func (c *RedisCache) Set(ctx context.Context, snapshot *models.AnalyticsResponse) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("analytics cache: encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("analytics cache: set snapshot: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("analytics cache: delete snapshot: %w", err)
	}
	return nil
}

// NopCache is used when Redis is disabled; every read misses
type NopCache struct{}

// Get always misses
func (NopCache) Get(context.Context) (*models.AnalyticsResponse, error) {
	return nil, ErrCacheMiss
}

// Set discards the snapshot
func (NopCache) Set(context.Context, *models.AnalyticsResponse) error { return nil }

// Invalidate does nothing
func (NopCache) Invalidate(context.Context) error { return nil }
