package cache

import (
	"context"
	"time"

	assessmentTypes "github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// CachedResults holds the computed scoring of one assessment, so repeated
// result reads do not re-run the engine over all responses.
type CachedResults struct {
	AreaResults []assessmentTypes.AreaResult   `json:"areaResults"`
	Summary     assessmentTypes.OverallSummary `json:"summary"`
	ComputedAt  int64                          `json:"computedAt"`
}

type ResultsCache interface {
	Get(ctx context.Context, instanceID string, assessmentID string) (*CachedResults, error)
	Set(ctx context.Context, instanceID string, assessmentID string, results CachedResults, ttl time.Duration) error
	Invalidate(ctx context.Context, instanceID string, assessmentID string) error
}
