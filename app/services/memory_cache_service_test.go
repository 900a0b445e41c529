package services

import (
	"context"
	"testing"

	"github.com/region-dashboard/internal/matcher"
)

func TestMemoryCacheService(t *testing.T) {
	cache, err := NewMemoryCacheService(2)
	if err != nil {
		t.Fatalf("NewMemoryCacheService: %v", err)
	}
	ctx := context.Background()

	res := &matcher.Resolution{Matched: true, Key: "서울특별시", Charge: 100}
	if err := cache.Set(ctx, "k1", res); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found, err := cache.Get(ctx, "k1")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if got.Key != "서울특별시" || got.Charge != 100 {
		t.Errorf("got %+v", got)
	}

	if _, found, _ := cache.Get(ctx, "absent"); found {
		t.Error("absent key reported found")
	}

	stats, err := cache.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalHits != 1 || stats.TotalMiss != 1 || stats.TotalItems != 1 {
		t.Errorf("stats = %+v", stats)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found, _ := cache.Get(ctx, "k1"); found {
		t.Error("key survived Clear")
	}
}

// The LRU bound evicts the oldest entry rather than growing.
func TestMemoryCacheService_Eviction(t *testing.T) {
	cache, _ := NewMemoryCacheService(2)
	ctx := context.Background()

	cache.Set(ctx, "a", &matcher.Resolution{Key: "a"})
	cache.Set(ctx, "b", &matcher.Resolution{Key: "b"})
	cache.Set(ctx, "c", &matcher.Resolution{Key: "c"})

	if _, found, _ := cache.Get(ctx, "a"); found {
		t.Error("oldest entry should have been evicted")
	}
	if _, found, _ := cache.Get(ctx, "c"); !found {
		t.Error("newest entry missing")
	}
}
