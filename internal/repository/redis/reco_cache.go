package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecomart/domain"
)

// RecoCache stores recently served personalized listings keyed by user and
// limit. Entries expire on their own; the engine treats every cache error as
// a miss.
type RecoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecoCache(client *redis.Client, ttl time.Duration) *RecoCache {
	return &RecoCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(userID uint, limit int) string {
	return fmt.Sprintf("reco:user:%d:limit:%d", userID, limit)
}

func (c *RecoCache) Get(ctx context.Context, userID uint, limit int) (domain.Recommendation, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(userID, limit)).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.Recommendation{}, false, nil
		}
		return domain.Recommendation{}, false, fmt.Errorf("failed to get recommendation from Redis: %w", err)
	}

	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return domain.Recommendation{}, false, fmt.Errorf("failed to unmarshal cached recommendation: %w", err)
	}

	return rec, true, nil
}

func (c *RecoCache) Set(ctx context.Context, userID uint, limit int, rec domain.Recommendation) error {
	jsonData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(userID, limit), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendation in Redis: %w", err)
	}

	return nil
}
