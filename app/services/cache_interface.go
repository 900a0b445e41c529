package services

import (
	"context"

	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/matcher"
)

// CacheStats summarizes cache effectiveness for the admin surface.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService caches resolution payloads keyed by dataset version, level
// and feature name.
type ICacheService interface {
	// Get returns a cached resolution, if present.
	Get(ctx context.Context, key string) (*matcher.Resolution, bool, error)

	// Set stores a resolution.
	Set(ctx context.Context, key string, res *matcher.Resolution) error

	// Delete removes one entry.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// GetStats reports hit/miss counters.
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close releases any connection the backend holds.
	Close() error
}

// ResolutionCacheKey builds the cache key for one feature lookup. The
// dataset version prefix orphans stale entries whenever records or the
// mapping change.
func ResolutionCacheKey(datasetVersion string, level gazetteer.Level, featureName string) string {
	return datasetVersion + "\x1f" + string(level) + "\x1f" + featureName
}
