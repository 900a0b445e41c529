package matcher

import (
	"strings"

	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/internal/aggregate"
	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/normalizer"
	"go.uber.org/zap"
)

// DefaultPoCThreshold is the charge (smallest currency unit) below which a
// region is classified as proof-of-concept scale.
const DefaultPoCThreshold int64 = 100_000

// MatchStrategy records how a feature name was paired with an aggregate.
type MatchStrategy string

const (
	MatchStrategyExact   MatchStrategy = "exact"
	MatchStrategyPartial MatchStrategy = "partial"
)

// Matcher resolves boundary feature names against aggregated customer data
// using the injected name tables.
type Matcher struct {
	mapping *gazetteer.Mapping
	logger  *zap.Logger
}

// New creates a Matcher. A nil logger is replaced with a no-op one so the
// pure matching paths stay usable in tests without wiring.
func New(mapping *gazetteer.Mapping, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{mapping: mapping, logger: logger}
}

// Mapping returns the name tables the matcher currently uses.
func (m *Matcher) Mapping() *gazetteer.Mapping {
	return m.mapping
}

// MatchResult pairs a boundary feature with the aggregate it resolved to.
// Key is the key actually present in the aggregate map, which can differ
// from CanonicalName when the pairing came from the partial fallback.
type MatchResult struct {
	Key           string
	Aggregate     *aggregate.RegionAggregate
	CanonicalName string
	Strategy      MatchStrategy
}

// Match resolves one external feature name against the aggregates. An exact
// key hit on the canonical (internal-script) name always wins. Otherwise the
// suffix-normalized forms are compared by substring containment in either
// direction, scanning keys in aggregate insertion order so the first match
// is stable for a stable input. Nil means no data for this feature.
func (m *Matcher) Match(externalName string, level gazetteer.Level, aggs *aggregate.Result) *MatchResult {
	canonical := m.mapping.ToInternalName(externalName, level)

	if agg, ok := aggs.Get(canonical); ok {
		return &MatchResult{
			Key:           canonical,
			Aggregate:     agg,
			CanonicalName: canonical,
			Strategy:      MatchStrategyExact,
		}
	}

	cleanTarget := normalizer.Normalize(canonical)
	// An empty target would substring-match every key; treat it as
	// unmatchable instead.
	if cleanTarget == "" {
		return nil
	}

	for _, key := range aggs.Keys() {
		cleanKey := normalizer.Normalize(key)
		if cleanKey == "" {
			continue
		}
		if cleanTarget == cleanKey ||
			strings.Contains(cleanKey, cleanTarget) ||
			strings.Contains(cleanTarget, cleanKey) {
			agg, _ := aggs.Get(key)
			m.logger.Debug("partial region match",
				zap.String("feature", externalName),
				zap.String("canonical", canonical),
				zap.String("matched_key", key))
			return &MatchResult{
				Key:           key,
				Aggregate:     agg,
				CanonicalName: canonical,
				Strategy:      MatchStrategyPartial,
			}
		}
	}

	return nil
}

// Resolution is the display payload for one rendered boundary feature. On a
// miss only DisplayName is populated so the map can still label the region.
type Resolution struct {
	Matched     bool                    `json:"matched"`
	Key         string                  `json:"key,omitempty"`
	DisplayName string                  `json:"display_name"`
	Charge      int64                   `json:"charge"`
	Usage       int64                   `json:"usage"`
	Items       []models.CustomerRecord `json:"items,omitempty"`
	IsPoC       bool                    `json:"is_poc"`
	Strategy    MatchStrategy           `json:"strategy,omitempty"`
}

// Resolve joins a match with its aggregate totals and classifies the region
// against the PoC threshold. The comparison is strict less-than: a charge
// equal to the threshold is not PoC. The classification only affects visual
// treatment downstream, never filtering.
func (m *Matcher) Resolve(externalName string, level gazetteer.Level, aggs *aggregate.Result, pocThreshold int64) Resolution {
	canonical := m.mapping.ToInternalName(externalName, level)

	match := m.Match(externalName, level, aggs)
	if match == nil {
		return Resolution{
			Matched:     false,
			DisplayName: canonical,
		}
	}

	return Resolution{
		Matched:     true,
		Key:         match.Key,
		DisplayName: match.CanonicalName,
		Charge:      match.Aggregate.Charge,
		Usage:       match.Aggregate.Usage,
		Items:       match.Aggregate.Items,
		IsPoC:       match.Aggregate.Charge < pocThreshold,
		Strategy:    match.Strategy,
	}
}
