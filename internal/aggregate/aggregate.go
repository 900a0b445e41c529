package aggregate

import (
	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/internal/gazetteer"
)

// RegionAggregate accumulates the customer records contributing to one
// region key. Charge and Usage always equal the sums over Items, and an
// aggregate is only created once a record contributes, so Items is never
// empty.
type RegionAggregate struct {
	Key    string                  `json:"key"`
	Charge int64                   `json:"charge"`
	Usage  int64                   `json:"usage"`
	Items  []models.CustomerRecord `json:"items"`
}

// Result is an insertion-ordered aggregate map. Iteration order is the order
// region keys first appear in the input records, which makes the matcher's
// first-match-wins fallback reproducible for a stable input order.
type Result struct {
	keys  []string
	byKey map[string]*RegionAggregate
}

func newResult() *Result {
	return &Result{byKey: make(map[string]*RegionAggregate)}
}

// Get returns the aggregate stored under key.
func (r *Result) Get(key string) (*RegionAggregate, bool) {
	agg, ok := r.byKey[key]
	return agg, ok
}

// Keys returns the region keys in insertion order.
func (r *Result) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of regions with at least one contributing record.
func (r *Result) Len() int {
	return len(r.keys)
}

// All returns the aggregates in insertion order.
func (r *Result) All() []*RegionAggregate {
	out := make([]*RegionAggregate, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

func (r *Result) add(key string, rec models.CustomerRecord) {
	agg, ok := r.byKey[key]
	if !ok {
		agg = &RegionAggregate{Key: key}
		r.byKey[key] = agg
		r.keys = append(r.keys, key)
	}
	agg.Charge += rec.Charge
	agg.Usage += rec.Usage
	agg.Items = append(agg.Items, rec)
}

// GroupKey returns the aggregation key for a record at the given level. At
// municipality level the sub-region is used when present, otherwise the
// top-level region substitutes. An empty return means the record has no
// usable key at this level.
func GroupKey(rec models.CustomerRecord, level gazetteer.Level) string {
	if level == gazetteer.LevelMunicipality && rec.SubRegion != "" {
		return rec.SubRegion
	}
	return rec.Region
}

// Aggregate groups records by region key and sums charge and usage. Records
// with no usable key are silently excluded. Input records are not mutated;
// values are carried through as supplied, range validation belongs to the
// API boundary.
func Aggregate(records []models.CustomerRecord, level gazetteer.Level) *Result {
	result := newResult()
	for _, rec := range records {
		key := GroupKey(rec, level)
		if key == "" {
			continue
		}
		result.add(key, rec)
	}
	return result
}

// Merge combines aggregation results with disjoint key sets, preserving the
// insertion order of each input in argument order. Used by the batch refresh
// path when datasets arrive in segments.
func Merge(results ...*Result) *Result {
	merged := newResult()
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, key := range r.keys {
			src := r.byKey[key]
			for _, rec := range src.Items {
				merged.add(key, rec)
			}
		}
	}
	return merged
}
