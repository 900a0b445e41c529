package aggregate

import (
	"reflect"
	"testing"

	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/internal/gazetteer"
)

func testRecords() []models.CustomerRecord {
	return []models.CustomerRecord{
		{Name: "서울특별시청", Region: "서울특별시", SubRegion: "중구", Charge: 52100000, Usage: 182034},
		{Name: "서울교통공사", Region: "서울특별시", SubRegion: "성동구", Charge: 31204168, Usage: 95410},
		{Name: "경기도청", Region: "경기도", Charge: 26750000, Usage: 88012},
		{Name: "수원시청", Region: "경기도", SubRegion: "수원시", Charge: 9100000, Usage: 30411},
		{Name: "한국철도공사", Charge: 12800000, Usage: 40210}, // no region key
	}
}

func TestAggregate_Province(t *testing.T) {
	result := Aggregate(testRecords(), gazetteer.LevelProvince)

	if result.Len() != 2 {
		t.Fatalf("expected 2 province aggregates, got %d", result.Len())
	}

	seoul, ok := result.Get("서울특별시")
	if !ok {
		t.Fatal("missing 서울특별시 aggregate")
	}
	if seoul.Charge != 83304168 {
		t.Errorf("서울특별시 charge = %d, want 83304168", seoul.Charge)
	}
	if seoul.Usage != 277444 {
		t.Errorf("서울특별시 usage = %d, want 277444", seoul.Usage)
	}
	if len(seoul.Items) != 2 {
		t.Errorf("서울특별시 items = %d, want 2", len(seoul.Items))
	}

	gyeonggi, _ := result.Get("경기도")
	if gyeonggi.Charge != 35850000 {
		t.Errorf("경기도 charge = %d, want 35850000", gyeonggi.Charge)
	}
}

// A record without a sub-region still contributes at municipality level,
// keyed by its top-level region.
func TestAggregate_MunicipalityFallback(t *testing.T) {
	result := Aggregate(testRecords(), gazetteer.LevelMunicipality)

	gyeonggi, ok := result.Get("경기도")
	if !ok {
		t.Fatal("record without sub_region should fall back to its region key")
	}
	if gyeonggi.Charge != 26750000 || len(gyeonggi.Items) != 1 {
		t.Errorf("경기도 fallback aggregate = charge %d, items %d", gyeonggi.Charge, len(gyeonggi.Items))
	}

	suwon, ok := result.Get("수원시")
	if !ok || suwon.Charge != 9100000 {
		t.Errorf("수원시 aggregate missing or wrong: %+v", suwon)
	}
}

// Records with no usable key are excluded from every level, never lumped
// into a catch-all bucket.
func TestAggregate_ExcludesKeylessRecords(t *testing.T) {
	for _, level := range []gazetteer.Level{gazetteer.LevelProvince, gazetteer.LevelMunicipality} {
		result := Aggregate(testRecords(), level)
		for _, agg := range result.All() {
			for _, item := range agg.Items {
				if item.Name == "한국철도공사" {
					t.Errorf("keyless record appeared under %q at %s level", agg.Key, level)
				}
			}
		}
	}
}

// Totals across aggregates equal the totals of the contributing records.
func TestAggregate_Additivity(t *testing.T) {
	records := testRecords()
	result := Aggregate(records, gazetteer.LevelProvince)

	var wantCharge, wantUsage int64
	for _, rec := range records {
		if rec.HasRegion() {
			wantCharge += rec.Charge
			wantUsage += rec.Usage
		}
	}

	var gotCharge, gotUsage int64
	var gotItems int
	for _, agg := range result.All() {
		gotCharge += agg.Charge
		gotUsage += agg.Usage
		gotItems += len(agg.Items)
	}

	if gotCharge != wantCharge || gotUsage != wantUsage {
		t.Errorf("aggregate totals = (%d, %d), want (%d, %d)", gotCharge, gotUsage, wantCharge, wantUsage)
	}
	if gotItems != 4 {
		t.Errorf("total items = %d, want 4", gotItems)
	}
}

func TestAggregate_InsertionOrder(t *testing.T) {
	result := Aggregate(testRecords(), gazetteer.LevelMunicipality)

	want := []string{"중구", "성동구", "경기도", "수원시"}
	if got := result.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// All() follows the same order.
	all := result.All()
	for i, agg := range all {
		if agg.Key != want[i] {
			t.Errorf("All()[%d].Key = %q, want %q", i, agg.Key, want[i])
		}
	}
}

func TestMerge(t *testing.T) {
	first := Aggregate([]models.CustomerRecord{
		{Name: "a", Region: "서울특별시", Charge: 100, Usage: 1},
	}, gazetteer.LevelProvince)
	second := Aggregate([]models.CustomerRecord{
		{Name: "b", Region: "부산광역시", Charge: 200, Usage: 2},
		{Name: "c", Region: "서울특별시", Charge: 300, Usage: 3},
	}, gazetteer.LevelProvince)

	merged := Merge(first, nil, second)

	want := []string{"서울특별시", "부산광역시"}
	if got := merged.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("merged Keys() = %v, want %v", got, want)
	}

	seoul, _ := merged.Get("서울특별시")
	if seoul.Charge != 400 || seoul.Usage != 4 || len(seoul.Items) != 2 {
		t.Errorf("merged 서울특별시 = %+v", seoul)
	}
}

func TestGroupKey(t *testing.T) {
	rec := models.CustomerRecord{Region: "경기도", SubRegion: "수원시"}
	if got := GroupKey(rec, gazetteer.LevelProvince); got != "경기도" {
		t.Errorf("province GroupKey = %q", got)
	}
	if got := GroupKey(rec, gazetteer.LevelMunicipality); got != "수원시" {
		t.Errorf("municipality GroupKey = %q", got)
	}

	empty := models.CustomerRecord{}
	if got := GroupKey(empty, gazetteer.LevelMunicipality); got != "" {
		t.Errorf("keyless GroupKey = %q, want empty", got)
	}
}
