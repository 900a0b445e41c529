package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/region-dashboard/app/requests"
	"github.com/region-dashboard/app/responses"
	"github.com/region-dashboard/app/services"
	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/search"
	"go.uber.org/zap"
)

// DashboardController serves the map-facing endpoints: feature resolution,
// aggregates, directory search and the customer list.
type DashboardController struct {
	dashboard    *services.DashboardService
	adminService *services.AdminService
	cacheService services.ICacheService
	regionIndex  *search.RegionIndex // nil when search is unconfigured
	logger       *zap.Logger
}

// NewDashboardController wires the controller.
func NewDashboardController(dashboard *services.DashboardService, adminService *services.AdminService, cacheService services.ICacheService, regionIndex *search.RegionIndex, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboard:    dashboard,
		adminService: adminService,
		cacheService: cacheService,
		regionIndex:  regionIndex,
		logger:       logger,
	}
}

// ResolveRegion resolves one boundary feature name.
func (dc *DashboardController) ResolveRegion(c *gin.Context) {
	var req requests.ResolveRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	level, _ := gazetteer.ParseLevel(req.Level) // binding already restricted the value
	startTime := time.Now()
	version := dc.dashboard.DatasetVersion()
	cacheKey := services.ResolutionCacheKey(version, level, req.FeatureName)

	if req.UseCache {
		if cached, found, err := dc.cacheService.Get(c.Request.Context(), cacheKey); err == nil && found {
			c.JSON(http.StatusOK, responses.ResolveRegionResponse{
				Level:            req.Level,
				DatasetVersion:   version,
				Result:           *cached,
				ProcessingTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:         true,
			})
			return
		}
	}

	result := dc.dashboard.Resolve(req.FeatureName, level)

	if !result.Matched {
		dc.adminService.RecordMiss(c.Request.Context(), req.FeatureName, req.Level, result.DisplayName)
	}
	if req.UseCache {
		if err := dc.cacheService.Set(c.Request.Context(), cacheKey, &result); err != nil {
			dc.logger.Warn("resolution cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.ResolveRegionResponse{
		Level:            req.Level,
		DatasetVersion:   version,
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// BatchResolve resolves one rendering pass worth of feature names.
func (dc *DashboardController) BatchResolve(c *gin.Context) {
	var req requests.BatchResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	level, _ := gazetteer.ParseLevel(req.Level)
	startTime := time.Now()

	results := dc.dashboard.ResolveBatch(req.FeatureNames, level)
	for i, res := range results {
		if !res.Matched {
			dc.adminService.RecordMiss(c.Request.Context(), req.FeatureNames[i], req.Level, res.DisplayName)
		}
	}

	c.JSON(http.StatusOK, responses.BatchResolveResponse{
		Level:            req.Level,
		DatasetVersion:   dc.dashboard.DatasetVersion(),
		Results:          results,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// GetAggregates returns the full aggregate list for a level.
func (dc *DashboardController) GetAggregates(c *gin.Context) {
	level, ok := gazetteer.ParseLevel(c.DefaultQuery("level", string(gazetteer.LevelProvince)))
	if !ok {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_LEVEL",
			Message: "level must be province or municipality",
		})
		return
	}

	c.JSON(http.StatusOK, responses.AggregatesResponse{
		Level:          string(level),
		DatasetVersion: dc.dashboard.DatasetVersion(),
		Regions:        dc.dashboard.Aggregates(level),
		PoCThreshold:   dc.dashboard.PoCThreshold(),
	})
}

// SearchRegions queries the region directory. Falls back to a linear scan
// over the mapping tables when the search index is unconfigured.
func (dc *DashboardController) SearchRegions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_QUERY",
			Message: "q parameter is required",
		})
		return
	}
	level, _ := gazetteer.ParseLevel(c.Query("level")) // empty -> both levels

	limit := int64(10)
	if v, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	var (
		docs []search.RegionDocument
		err  error
	)
	if dc.regionIndex != nil {
		docs, err = dc.regionIndex.Search(query, level, limit)
		if err != nil {
			dc.logger.Warn("region index search failed, falling back to scan", zap.Error(err))
		}
	}
	if dc.regionIndex == nil || err != nil {
		docs = scanMapping(dc.dashboard.Mapping(), query, level, int(limit))
	}

	c.JSON(http.StatusOK, responses.RegionSearchResponse{
		Query:   query,
		Results: docs,
	})
}

// ListCustomers returns the loaded customer dataset.
func (dc *DashboardController) ListCustomers(c *gin.Context) {
	records := dc.dashboard.Records()
	c.JSON(http.StatusOK, responses.CustomerListResponse{
		Total:   len(records),
		Records: records,
	})
}

// HealthCheck reports liveness.
func (dc *DashboardController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(dc.dashboard.GetStartTime()).String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"dashboard": "healthy",
			"cache":     "healthy",
		},
	})
}
