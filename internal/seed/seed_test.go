package seed

import "testing"

func TestRecords(t *testing.T) {
	records, err := Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 20 {
		t.Fatalf("records = %d, want 20", len(records))
	}

	// File order is load-bearing.
	if records[0].Name != "서울특별시청" {
		t.Errorf("first record = %q", records[0].Name)
	}
	if records[0].Region != "서울특별시" || records[0].SubRegion != "중구" {
		t.Errorf("first record region keys = %q / %q", records[0].Region, records[0].SubRegion)
	}

	// The dataset intentionally carries a region-less record.
	last := records[len(records)-1]
	if last.Name != "한국철도공사" || last.HasRegion() {
		t.Errorf("expected trailing region-less record, got %+v", last)
	}
}
