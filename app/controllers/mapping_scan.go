package controllers

import (
	"strings"

	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/normalizer"
	"github.com/region-dashboard/internal/search"
)

// scanMapping is the searchless fallback for the region directory: a linear
// substring scan over the static tables, folded on the romanized side so
// case and hyphens don't matter. Table sizes are tens of entries, so this
// stays cheap.
func scanMapping(mapping *gazetteer.Mapping, query string, level gazetteer.Level, limit int) []search.RegionDocument {
	levels := []gazetteer.Level{gazetteer.LevelProvince, gazetteer.LevelMunicipality}
	if level != "" {
		levels = []gazetteer.Level{level}
	}

	folded := normalizer.FoldExternal(query)
	var docs []search.RegionDocument
	for _, lvl := range levels {
		for _, entry := range mapping.Entries(lvl) {
			if len(docs) >= limit {
				return docs
			}
			if (folded != "" && strings.Contains(normalizer.FoldExternal(entry.External), folded)) ||
				strings.Contains(entry.Internal, query) {
				docs = append(docs, search.RegionDocument{
					ID:       string(lvl) + "-" + entry.External,
					External: entry.External,
					Internal: entry.Internal,
					Level:    string(lvl),
				})
			}
		}
	}
	return docs
}
