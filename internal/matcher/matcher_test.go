package matcher

import (
	"testing"

	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/internal/aggregate"
	"github.com/region-dashboard/internal/gazetteer"
)

func newTestMatcher() *Matcher {
	return New(gazetteer.Default(), nil)
}

func provinceAggs() *aggregate.Result {
	return aggregate.Aggregate([]models.CustomerRecord{
		{Name: "서울특별시청", Region: "서울특별시", Charge: 106292168, Usage: 317556},
		{Name: "경기도청", Region: "경기도", Charge: 26750000, Usage: 88012},
	}, gazetteer.LevelProvince)
}

func TestMatch_ExactCanonicalHit(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("Seoul", gazetteer.LevelProvince, provinceAggs())
	if result == nil {
		t.Fatal("expected a match for Seoul")
	}
	if result.Key != "서울특별시" || result.Strategy != MatchStrategyExact {
		t.Errorf("Match(Seoul) = key %q strategy %q, want 서울특별시/exact", result.Key, result.Strategy)
	}
	if result.Aggregate.Charge != 106292168 {
		t.Errorf("matched charge = %d, want 106292168", result.Aggregate.Charge)
	}
	if result.CanonicalName != "서울특별시" {
		t.Errorf("canonical = %q", result.CanonicalName)
	}
}

// Customer keys are often looser than the canonical form; the fallback
// compares suffix-normalized forms by containment in either direction.
func TestMatch_PartialFallback(t *testing.T) {
	m := newTestMatcher()

	t.Run("Key_Contains_Target", func(t *testing.T) {
		aggs := aggregate.Aggregate([]models.CustomerRecord{
			{Name: "수원 연구소", Region: "경기도", SubRegion: "수원시 영통구", Charge: 5000, Usage: 10},
		}, gazetteer.LevelMunicipality)

		result := m.Match("Suwon-si", gazetteer.LevelMunicipality, aggs)
		if result == nil {
			t.Fatal("expected partial match for Suwon-si")
		}
		if result.Key != "수원시 영통구" || result.Strategy != MatchStrategyPartial {
			t.Errorf("key %q strategy %q, want 수원시 영통구/partial", result.Key, result.Strategy)
		}
		if result.CanonicalName != "수원시" {
			t.Errorf("canonical = %q, want 수원시", result.CanonicalName)
		}
	})

	t.Run("Target_Contains_Key", func(t *testing.T) {
		aggs := aggregate.Aggregate([]models.CustomerRecord{
			{Name: "수원시청", Region: "경기도", SubRegion: "수원시", Charge: 9100000, Usage: 30411},
		}, gazetteer.LevelMunicipality)

		// Unknown external names pass through the mapping, so an
		// internal-script compound still reaches the fallback.
		result := m.Match("수원시 영통구", gazetteer.LevelMunicipality, aggs)
		if result == nil {
			t.Fatal("expected partial match for 수원시 영통구")
		}
		if result.Key != "수원시" || result.Strategy != MatchStrategyPartial {
			t.Errorf("key %q strategy %q, want 수원시/partial", result.Key, result.Strategy)
		}
	})
}

// An exact canonical key hit always wins over any partial candidate.
func TestMatch_ExactBeatsPartial(t *testing.T) {
	m := newTestMatcher()

	aggs := aggregate.Aggregate([]models.CustomerRecord{
		{Name: "확장 기관", Region: "경기도", SubRegion: "수원시 영통구", Charge: 1, Usage: 1},
		{Name: "수원시청", Region: "경기도", SubRegion: "수원시", Charge: 2, Usage: 2},
	}, gazetteer.LevelMunicipality)

	result := m.Match("Suwon-si", gazetteer.LevelMunicipality, aggs)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Strategy != MatchStrategyExact || result.Key != "수원시" {
		t.Errorf("key %q strategy %q, want exact hit on 수원시", result.Key, result.Strategy)
	}
}

// With several partial candidates the first key in aggregate insertion
// order wins.
func TestMatch_FirstPartialWins(t *testing.T) {
	m := newTestMatcher()

	aggs := aggregate.Aggregate([]models.CustomerRecord{
		{Name: "a", Region: "경기도", SubRegion: "수원시 영통구", Charge: 1, Usage: 1},
		{Name: "b", Region: "경기도", SubRegion: "수원시 장안구", Charge: 2, Usage: 2},
	}, gazetteer.LevelMunicipality)

	result := m.Match("Suwon-si", gazetteer.LevelMunicipality, aggs)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Key != "수원시 영통구" {
		t.Errorf("first insertion-order candidate should win, got %q", result.Key)
	}
}

// A name that normalizes to nothing must never substring-match everything.
func TestMatch_EmptyNormalizedTarget(t *testing.T) {
	m := newTestMatcher()

	aggs := aggregate.Aggregate([]models.CustomerRecord{
		{Name: "수원시청", Region: "경기도", SubRegion: "수원시", Charge: 9100000, Usage: 30411},
	}, gazetteer.LevelMunicipality)

	if result := m.Match("시", gazetteer.LevelMunicipality, aggs); result != nil {
		t.Errorf("suffix-only name matched %q, want no match", result.Key)
	}
}

func TestMatch_NoCandidate(t *testing.T) {
	m := newTestMatcher()

	aggs := aggregate.Aggregate([]models.CustomerRecord{
		{Name: "중구 기관", Region: "서울특별시", SubRegion: "중구", Charge: 100, Usage: 1},
	}, gazetteer.LevelMunicipality)

	// 동구 has no data; 중구 must not absorb it.
	if result := m.Match("Dong-gu", gazetteer.LevelMunicipality, aggs); result != nil {
		t.Errorf("Dong-gu matched %q, want nil", result.Key)
	}
}

func TestResolve_Match(t *testing.T) {
	m := newTestMatcher()

	res := m.Resolve("Seoul", gazetteer.LevelProvince, provinceAggs(), DefaultPoCThreshold)
	if !res.Matched {
		t.Fatal("expected matched resolution")
	}
	if res.DisplayName != "서울특별시" || res.Key != "서울특별시" {
		t.Errorf("display %q key %q", res.DisplayName, res.Key)
	}
	if res.Charge != 106292168 || res.Usage != 317556 {
		t.Errorf("totals = (%d, %d)", res.Charge, res.Usage)
	}
	if res.IsPoC {
		t.Error("well above threshold, must not be PoC")
	}
	if len(res.Items) != 1 {
		t.Errorf("items = %d", len(res.Items))
	}
}

// A miss still carries the translated display name so the map can label
// the region.
func TestResolve_Miss(t *testing.T) {
	m := newTestMatcher()

	res := m.Resolve("Atlantis", gazetteer.LevelProvince, provinceAggs(), DefaultPoCThreshold)
	if res.Matched {
		t.Fatal("Atlantis should not match")
	}
	if res.DisplayName != "Atlantis" {
		t.Errorf("display = %q, want raw name passthrough", res.DisplayName)
	}
	if res.Charge != 0 || res.Usage != 0 || res.Items != nil || res.IsPoC {
		t.Errorf("miss payload should be empty: %+v", res)
	}
}

// The PoC comparison is strict less-than: charge equal to the threshold is
// not PoC.
func TestResolve_PoCBoundary(t *testing.T) {
	m := newTestMatcher()

	testCases := []struct {
		name      string
		charge    int64
		threshold int64
		wantPoC   bool
	}{
		{name: "Below_Threshold", charge: 99999, threshold: 100000, wantPoC: true},
		{name: "At_Threshold", charge: 100000, threshold: 100000, wantPoC: false},
		{name: "Above_Threshold", charge: 100001, threshold: 100000, wantPoC: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			aggs := aggregate.Aggregate([]models.CustomerRecord{
				{Name: "기관", Region: "서울특별시", Charge: tc.charge, Usage: 1},
			}, gazetteer.LevelProvince)

			res := m.Resolve("Seoul", gazetteer.LevelProvince, aggs, tc.threshold)
			if !res.Matched {
				t.Fatal("expected a match")
			}
			if res.IsPoC != tc.wantPoC {
				t.Errorf("charge %d vs threshold %d: IsPoC = %v, want %v", tc.charge, tc.threshold, res.IsPoC, tc.wantPoC)
			}
		})
	}
}

// Learned aliases reach the matcher through the mapping.
func TestMatch_ThroughAlias(t *testing.T) {
	mapping := gazetteer.Default().WithAlias(gazetteer.LevelProvince, "Seoul Metro", "서울특별시")
	m := New(mapping, nil)

	result := m.Match("Seoul Metro", gazetteer.LevelProvince, provinceAggs())
	if result == nil || result.Key != "서울특별시" || result.Strategy != MatchStrategyExact {
		t.Errorf("alias match = %+v", result)
	}
}
