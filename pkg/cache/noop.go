package cache

import (
	"context"
	"time"
)

type noopResultsCache struct{}

// NewNoopResultsCache returns a cache that stores nothing, used when no
// redis connection is configured.
func NewNoopResultsCache() ResultsCache {
	return noopResultsCache{}
}

func (noopResultsCache) Get(ctx context.Context, instanceID string, assessmentID string) (*CachedResults, error) {
	return nil, nil
}

func (noopResultsCache) Set(ctx context.Context, instanceID string, assessmentID string, results CachedResults, ttl time.Duration) error {
	return nil
}

func (noopResultsCache) Invalidate(ctx context.Context, instanceID string, assessmentID string) error {
	return nil
}
