package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/region-dashboard/internal/matcher"
)

// MemoryCacheService is the in-process L1 resolution cache backed by an LRU.
// Bounded size keeps a misbehaving batch of feature names from growing the
// heap; eviction is acceptable because entries are pure recomputations.
type MemoryCacheService struct {
	cache *lru.Cache[string, *matcher.Resolution]

	hits   int64
	misses int64
}

// NewMemoryCacheService creates the L1 cache.
func NewMemoryCacheService(size int) (*MemoryCacheService, error) {
	cache, err := lru.New[string, *matcher.Resolution](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &MemoryCacheService{cache: cache}, nil
}

// Get returns the cached resolution for key.
func (mcs *MemoryCacheService) Get(ctx context.Context, key string) (*matcher.Resolution, bool, error) {
	if res, ok := mcs.cache.Get(key); ok {
		atomic.AddInt64(&mcs.hits, 1)
		return res, true, nil
	}
	atomic.AddInt64(&mcs.misses, 1)
	return nil, false, nil
}

// Set stores a resolution.
func (mcs *MemoryCacheService) Set(ctx context.Context, key string, res *matcher.Resolution) error {
	mcs.cache.Add(key, res)
	return nil
}

// Delete removes one entry.
func (mcs *MemoryCacheService) Delete(ctx context.Context, key string) error {
	mcs.cache.Remove(key)
	return nil
}

// Clear removes every entry.
func (mcs *MemoryCacheService) Clear(ctx context.Context) error {
	mcs.cache.Purge()
	return nil
}

// GetStats reports hit/miss counters.
func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&mcs.hits)
	misses := atomic.LoadInt64(&mcs.misses)
	total := hits + misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}, nil
}

// Close is a no-op for the in-memory cache.
func (mcs *MemoryCacheService) Close() error {
	return nil
}
