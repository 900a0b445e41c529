// Package search provides the Meilisearch-backed region directory used by
// the dashboard's detail panel to look regions up by either script.
package search

import (
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"github.com/region-dashboard/internal/gazetteer"
	"go.uber.org/zap"
)

// Config holds the Meilisearch connection settings.
type Config struct {
	Host      string
	APIKey    string
	IndexName string
	Timeout   time.Duration
}

// RegionDocument is one searchable region entry.
type RegionDocument struct {
	ID       string `json:"id"`
	External string `json:"external"`
	Internal string `json:"internal"`
	Level    string `json:"level"`
}

// RegionIndex wraps the Meilisearch index. Callers hold a nil *RegionIndex
// when search is unconfigured and fall back to scanning the mapping tables.
type RegionIndex struct {
	client    meilisearch.ServiceManager
	indexName string
	logger    *zap.Logger
}

// NewRegionIndex connects to Meilisearch and verifies it is reachable.
func NewRegionIndex(cfg Config, logger *zap.Logger) (*RegionIndex, error) {
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))
	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("meilisearch unreachable: %w", err)
	}
	return &RegionIndex{
		client:    client,
		indexName: cfg.IndexName,
		logger:    logger,
	}, nil
}

// Seed loads the region entries of both levels into the index and makes the
// level attribute filterable. Safe to call on every startup; documents are
// keyed by id so reseeding is an upsert.
func (ri *RegionIndex) Seed(mapping *gazetteer.Mapping) error {
	var docs []RegionDocument
	for _, level := range []gazetteer.Level{gazetteer.LevelProvince, gazetteer.LevelMunicipality} {
		for _, e := range mapping.Entries(level) {
			docs = append(docs, RegionDocument{
				ID:       string(level) + "-" + e.External,
				External: e.External,
				Internal: e.Internal,
				Level:    string(level),
			})
		}
	}

	index := ri.client.Index(ri.indexName)
	if _, err := index.UpdateFilterableAttributes(&[]string{"level"}); err != nil {
		return fmt.Errorf("update filterable attributes: %w", err)
	}
	task, err := index.AddDocuments(docs, "id")
	if err != nil {
		return fmt.Errorf("seed region index: %w", err)
	}
	ri.logger.Info("seeded region directory index",
		zap.Int("documents", len(docs)),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// Search queries the directory, optionally restricted to one level.
func (ri *RegionIndex) Search(query string, level gazetteer.Level, limit int64) ([]RegionDocument, error) {
	req := &meilisearch.SearchRequest{Limit: limit}
	if level != "" {
		req.Filter = fmt.Sprintf("level = %q", string(level))
	}

	result, err := ri.client.Index(ri.indexName).Search(query, req)
	if err != nil {
		return nil, fmt.Errorf("region search: %w", err)
	}

	docs := make([]RegionDocument, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		doc := RegionDocument{}
		if v, ok := hitMap["id"].(string); ok {
			doc.ID = v
		}
		if v, ok := hitMap["external"].(string); ok {
			doc.External = v
		}
		if v, ok := hitMap["internal"].(string); ok {
			doc.Internal = v
		}
		if v, ok := hitMap["level"].(string); ok {
			doc.Level = v
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
