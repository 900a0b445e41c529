package services

import (
	"context"
	"fmt"
	"time"

	"github.com/region-dashboard/internal/matcher"
	"go.uber.org/zap"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2). L1
// keeps hot feature names off the network; L2 shares warm entries across
// replicas and restarts.
type HybridCacheService struct {
	memory *MemoryCacheService
	redis  *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService combines the two cache tiers.
func NewHybridCacheService(memory *MemoryCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		memory: memory,
		redis:  redisCache,
		logger: logger,
	}
}

// Get checks L1 first, then L2; an L2 hit is promoted to L1 in the
// background.
func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*matcher.Resolution, bool, error) {
	res, found, err := hcs.memory.Get(ctx, key)
	if err == nil && found {
		return res, true, nil
	}

	res, found, err = hcs.redis.Get(ctx, key)
	if err != nil {
		hcs.logger.Warn("redis cache error, treating as miss", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := hcs.memory.Set(bgCtx, key, res); err != nil {
			hcs.logger.Warn("L2->L1 promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()

	return res, true, nil
}

// Set writes both tiers in parallel.
func (hcs *HybridCacheService) Set(ctx context.Context, key string, res *matcher.Resolution) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.memory.Set(ctx, key, res) }()
	go func() { errCh <- hcs.redis.Set(ctx, key, res) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache errors: %v", errs)
	}
	return nil
}

// Delete removes the key from both tiers.
func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.memory.Delete(ctx, key) }()
	go func() { errCh <- hcs.redis.Delete(ctx, key) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("delete errors: %v", errs)
	}
	return nil
}

// Clear empties both tiers.
func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.memory.Clear(ctx) }()
	go func() { errCh <- hcs.redis.Clear(ctx) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("clear errors: %v", errs)
	}
	hcs.logger.Info("cleared hybrid resolution cache")
	return nil
}

// GetStats combines the counters from both tiers.
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	memStats, memErr := hcs.memory.GetStats(ctx)
	redisStats, redisErr := hcs.redis.GetStats(ctx)

	if memErr != nil && redisErr != nil {
		return nil, fmt.Errorf("both cache tiers failed: %v, %v", memErr, redisErr)
	}

	combined := &CacheStats{}
	switch {
	case memErr == nil && redisErr == nil:
		totalHits := memStats.TotalHits + redisStats.TotalHits
		totalMiss := memStats.TotalMiss + redisStats.TotalMiss
		if total := totalHits + totalMiss; total > 0 {
			combined.HitRate = float64(totalHits) / float64(total)
		}
		combined.TotalHits = totalHits
		combined.TotalMiss = totalMiss
		combined.TotalItems = memStats.TotalItems + redisStats.TotalItems
	case memErr == nil:
		*combined = *memStats
	default:
		*combined = *redisStats
	}
	return combined, nil
}

// Close closes both tiers.
func (hcs *HybridCacheService) Close() error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.memory.Close() }()
	go func() { errCh <- hcs.redis.Close() }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
