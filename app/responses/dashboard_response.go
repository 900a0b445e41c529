package responses

import (
	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/app/services"
	"github.com/region-dashboard/internal/aggregate"
	"github.com/region-dashboard/internal/matcher"
	"github.com/region-dashboard/internal/search"
)

// ResolveRegionResponse answers a single feature lookup.
type ResolveRegionResponse struct {
	Level            string             `json:"level"`
	DatasetVersion   string             `json:"dataset_version"`
	Result           matcher.Resolution `json:"result"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
	CacheHit         bool               `json:"cache_hit"`
}

// BatchResolveResponse answers one rendering pass.
type BatchResolveResponse struct {
	Level            string               `json:"level"`
	DatasetVersion   string               `json:"dataset_version"`
	Results          []matcher.Resolution `json:"results"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
}

// AggregatesResponse carries the full per-region totals for a level.
type AggregatesResponse struct {
	Level          string                       `json:"level"`
	DatasetVersion string                       `json:"dataset_version"`
	Regions        []*aggregate.RegionAggregate `json:"regions"`
	PoCThreshold   int64                        `json:"poc_threshold"`
}

// RegionSearchResponse answers a directory search.
type RegionSearchResponse struct {
	Query   string                  `json:"query"`
	Results []search.RegionDocument `json:"results"`
}

// CustomerListResponse lists the loaded customer records.
type CustomerListResponse struct {
	Total   int                     `json:"total"`
	Records []models.CustomerRecord `json:"records"`
}

// ContractListResponse lists contract overlays.
type ContractListResponse struct {
	Total     int                      `json:"total"`
	Contracts []models.ContractOverlay `json:"contracts"`
}

// ReviewListResponse lists region reviews.
type ReviewListResponse struct {
	Reviews []models.RegionReview `json:"reviews"`
	Total   int64                 `json:"total"`
	Limit   int64                 `json:"limit"`
	Offset  int64                 `json:"offset"`
}

// AdminStatsResponse is the admin snapshot plus cache counters.
type AdminStatsResponse struct {
	Stats *services.SystemStats `json:"stats"`
	Cache *services.CacheStats  `json:"cache,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse is the uniform success envelope for mutations.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse reports service health.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
