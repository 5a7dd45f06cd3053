package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisResultsCache struct {
	client *redis.Client
}

// NewRedisResultsCache creates a results cache backed by the given redis
// client.
func NewRedisResultsCache(client *redis.Client) ResultsCache {
	return &redisResultsCache{
		client: client,
	}
}

func (c *redisResultsCache) key(instanceID string, assessmentID string) string {
	return fmt.Sprintf("results:%s:%s", instanceID, assessmentID)
}

func (c *redisResultsCache) Get(ctx context.Context, instanceID string, assessmentID string) (*CachedResults, error) {
	data, err := c.client.Get(ctx, c.key(instanceID, assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var results CachedResults
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *redisResultsCache) Set(ctx context.Context, instanceID string, assessmentID string, results CachedResults, ttl time.Duration) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(instanceID, assessmentID), data, ttl).Err()
}

func (c *redisResultsCache) Invalidate(ctx context.Context, instanceID string, assessmentID string) error {
	return c.client.Del(ctx, c.key(instanceID, assessmentID)).Err()
}
