package gazetteer

// Level selects which administrative tier a lookup targets.
type Level string

const (
	LevelProvince     Level = "province"
	LevelMunicipality Level = "municipality"
)

// ParseLevel converts a request-supplied level string.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelProvince:
		return LevelProvince, true
	case LevelMunicipality:
		return LevelMunicipality, true
	}
	return "", false
}

// Mapping is the immutable bidirectional name table set for both levels.
// It is built once at startup and injected into the matcher, so tests can
// substitute alternate tables. Aliases learned from approved reviews are
// layered over the static forward tables without touching them.
type Mapping struct {
	forward map[Level]map[string]string
	reverse map[Level]map[string]string
	abbrev  map[string]string
	aliases map[Level]map[string]string
	entries map[Level][]Entry
}

// NewMapping builds a Mapping from ordered entry lists. The reverse tables
// are derived by inverting the entries in list order; when two externals
// share an internal name the first entry wins, which keeps reverse lookups
// deterministic.
func NewMapping(provinces, municipalities []Entry, abbrevs []Abbrev) *Mapping {
	m := &Mapping{
		forward: make(map[Level]map[string]string, 2),
		reverse: make(map[Level]map[string]string, 2),
		abbrev:  make(map[string]string, len(abbrevs)),
		aliases: make(map[Level]map[string]string, 2),
		entries: make(map[Level][]Entry, 2),
	}
	for level, entries := range map[Level][]Entry{
		LevelProvince:     provinces,
		LevelMunicipality: municipalities,
	} {
		fwd := make(map[string]string, len(entries))
		rev := make(map[string]string, len(entries))
		for _, e := range entries {
			fwd[e.External] = e.Internal
			if _, taken := rev[e.Internal]; !taken {
				rev[e.Internal] = e.External
			}
		}
		m.forward[level] = fwd
		m.reverse[level] = rev
		m.aliases[level] = make(map[string]string)
		m.entries[level] = append([]Entry(nil), entries...)
	}
	for _, a := range abbrevs {
		m.abbrev[a.Short] = a.External
	}
	return m
}

// Default returns a Mapping built from the static Korea tables.
func Default() *Mapping {
	return NewMapping(provinceEntries, municipalityEntries, provinceAbbrevs)
}

// ToInternalName translates an external-script name to the internal script.
// Names absent from the table pass through unchanged: an unknown region
// degrades to showing its raw name instead of failing.
func (m *Mapping) ToInternalName(external string, level Level) string {
	if internal, ok := m.aliases[level][external]; ok {
		return internal
	}
	if internal, ok := m.forward[level][external]; ok {
		return internal
	}
	return external
}

// ToExternalName translates an internal-script name back to the external
// script. At province level the abbreviation table is consulted first, since
// customer rows often carry the short form. Unknown names pass through.
func (m *Mapping) ToExternalName(internal string, level Level) string {
	if level == LevelProvince {
		if external, ok := m.abbrev[internal]; ok {
			return external
		}
	}
	if external, ok := m.reverse[level][internal]; ok {
		return external
	}
	return internal
}

// Entries returns a copy of the static entry list for a level, used to seed
// the region directory index and to build suggestion candidates.
func (m *Mapping) Entries(level Level) []Entry {
	return append([]Entry(nil), m.entries[level]...)
}

// WithAlias returns a copy of the Mapping with one learned external ->
// internal alias added at the given level. The receiver is not modified.
func (m *Mapping) WithAlias(level Level, external, internal string) *Mapping {
	next := &Mapping{
		forward: m.forward,
		reverse: m.reverse,
		abbrev:  m.abbrev,
		aliases: make(map[Level]map[string]string, len(m.aliases)),
		entries: m.entries,
	}
	for lvl, aliases := range m.aliases {
		copied := make(map[string]string, len(aliases)+1)
		for k, v := range aliases {
			copied[k] = v
		}
		next.aliases[lvl] = copied
	}
	next.aliases[level][external] = internal
	return next
}

// Aliases returns the learned aliases for a level.
func (m *Mapping) Aliases(level Level) map[string]string {
	out := make(map[string]string, len(m.aliases[level]))
	for k, v := range m.aliases[level] {
		out[k] = v
	}
	return out
}
