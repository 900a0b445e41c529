package gazetteer

import "testing"

func TestParseLevel(t *testing.T) {
	if lvl, ok := ParseLevel("province"); !ok || lvl != LevelProvince {
		t.Errorf("ParseLevel(province) = %v, %v", lvl, ok)
	}
	if lvl, ok := ParseLevel("municipality"); !ok || lvl != LevelMunicipality {
		t.Errorf("ParseLevel(municipality) = %v, %v", lvl, ok)
	}
	if _, ok := ParseLevel("country"); ok {
		t.Error("ParseLevel(country) should fail")
	}
}

func TestToInternalName(t *testing.T) {
	m := Default()

	testCases := []struct {
		name     string
		external string
		level    Level
		expected string
	}{
		{name: "Province", external: "Seoul", level: LevelProvince, expected: "서울특별시"},
		{name: "Province_Hyphenated", external: "Jeollabuk-do", level: LevelProvince, expected: "전라북도"},
		{name: "Municipality", external: "Jung-gu", level: LevelMunicipality, expected: "중구"},
		{name: "Unknown_Passthrough", external: "Atlantis", level: LevelProvince, expected: "Atlantis"},
		{name: "Wrong_Level_Passthrough", external: "Seoul", level: LevelMunicipality, expected: "Seoul"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.ToInternalName(tc.external, tc.level); got != tc.expected {
				t.Errorf("ToInternalName(%q, %s) = %q, want %q", tc.external, tc.level, got, tc.expected)
			}
		})
	}
}

func TestToExternalName(t *testing.T) {
	m := Default()

	testCases := []struct {
		name     string
		internal string
		level    Level
		expected string
	}{
		{name: "Province_Full", internal: "서울특별시", level: LevelProvince, expected: "Seoul"},
		{name: "Province_Abbrev", internal: "경기", level: LevelProvince, expected: "Gyeonggi-do"},
		{name: "Municipality", internal: "수원시", level: LevelMunicipality, expected: "Suwon-si"},
		{name: "Unknown_Passthrough", internal: "가상시", level: LevelMunicipality, expected: "가상시"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.ToExternalName(tc.internal, tc.level); got != tc.expected {
				t.Errorf("ToExternalName(%q, %s) = %q, want %q", tc.internal, tc.level, got, tc.expected)
			}
		})
	}
}

// Two external names can share an internal name (Jung-gu exists in several
// metropolitan cities). The reverse table must keep the first entry.
func TestReverseTable_FirstEntryWins(t *testing.T) {
	m := NewMapping(
		[]Entry{
			{"Alpha-do", "공유도"},
			{"Beta-do", "공유도"},
		},
		nil, nil,
	)

	if got := m.ToExternalName("공유도", LevelProvince); got != "Alpha-do" {
		t.Errorf("ToExternalName(공유도) = %q, want first entry Alpha-do", got)
	}
	// Forward lookups keep both spellings.
	if got := m.ToInternalName("Beta-do", LevelProvince); got != "공유도" {
		t.Errorf("ToInternalName(Beta-do) = %q, want 공유도", got)
	}
}

func TestWithAlias(t *testing.T) {
	base := Default()
	learned := base.WithAlias(LevelProvince, "Dokdo", "경상북도")

	if got := learned.ToInternalName("Dokdo", LevelProvince); got != "경상북도" {
		t.Errorf("alias lookup = %q, want 경상북도", got)
	}
	// The receiver must stay untouched.
	if got := base.ToInternalName("Dokdo", LevelProvince); got != "Dokdo" {
		t.Errorf("base mapping mutated: ToInternalName(Dokdo) = %q", got)
	}
	// Static entries still resolve through the copy.
	if got := learned.ToInternalName("Seoul", LevelProvince); got != "서울특별시" {
		t.Errorf("static lookup through alias copy = %q", got)
	}

	aliases := learned.Aliases(LevelProvince)
	if len(aliases) != 1 || aliases["Dokdo"] != "경상북도" {
		t.Errorf("Aliases(province) = %v", aliases)
	}
}

// An alias overrides the static table for the same external name.
func TestWithAlias_OverridesForward(t *testing.T) {
	m := Default().WithAlias(LevelProvince, "Seoul", "세종특별자치시")
	if got := m.ToInternalName("Seoul", LevelProvince); got != "세종특별자치시" {
		t.Errorf("alias should win over forward table, got %q", got)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	m := Default()
	entries := m.Entries(LevelProvince)
	if len(entries) != 17 {
		t.Fatalf("expected 17 province entries, got %d", len(entries))
	}
	entries[0] = Entry{"Mutated", "변조"}
	if m.Entries(LevelProvince)[0].External != "Seoul" {
		t.Error("Entries should return a copy, internal slice was mutated")
	}
}
