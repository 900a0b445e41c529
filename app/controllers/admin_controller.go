package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/app/requests"
	"github.com/region-dashboard/app/responses"
	"github.com/region-dashboard/app/services"
	"go.uber.org/zap"
)

// AdminController serves the operator surface: contract overlay CRUD,
// unmatched-name reviews, stats and cache control.
type AdminController struct {
	adminService    *services.AdminService
	contractService *services.ContractService
	dashboard       *services.DashboardService
	cacheService    services.ICacheService
	logger          *zap.Logger
}

// NewAdminController wires the controller.
func NewAdminController(adminService *services.AdminService, contractService *services.ContractService, dashboard *services.DashboardService, cacheService services.ICacheService, logger *zap.Logger) *AdminController {
	return &AdminController{
		adminService:    adminService,
		contractService: contractService,
		dashboard:       dashboard,
		cacheService:    cacheService,
		logger:          logger,
	}
}

// ListContracts returns every contract overlay.
func (ac *AdminController) ListContracts(c *gin.Context) {
	contracts, err := ac.contractService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LIST_FAILED",
			Message: "listing contracts failed: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.ContractListResponse{
		Total:     len(contracts),
		Contracts: contracts,
	})
}

// GetContract returns one overlay by customer name.
func (ac *AdminController) GetContract(c *gin.Context) {
	name := c.Param("name")
	overlay, err := ac.contractService.Get(c.Request.Context(), name)
	if errors.Is(err, services.ErrContractNotFound) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "CONTRACT_NOT_FOUND",
			Message: "no contract overlay for " + name,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "GET_FAILED",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, overlay)
}

// UpsertContract creates or updates an overlay for a customer.
func (ac *AdminController) UpsertContract(c *gin.Context) {
	name := c.Param("name")
	var req requests.UpsertContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	overlay := models.ContractOverlay{
		CustomerName: name,
		ContractType: req.ContractType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Manager:      req.Manager,
		Memo:         req.Memo,
		MonthlyQuota: req.MonthlyQuota,
	}
	if err := ac.contractService.Upsert(c.Request.Context(), overlay); err != nil {
		c.JSON(http.StatusBadGateway, responses.ErrorResponse{
			Error:   "STORE_WRITE_FAILED",
			Message: "persisting contract failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "contract saved",
		Data:    overlay,
	})
}

// DeleteContract removes an overlay.
func (ac *AdminController) DeleteContract(c *gin.Context) {
	name := c.Param("name")
	err := ac.contractService.Delete(c.Request.Context(), name)
	if errors.Is(err, services.ErrContractNotFound) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "CONTRACT_NOT_FOUND",
			Message: "no contract overlay for " + name,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, responses.ErrorResponse{
			Error:   "STORE_DELETE_FAILED",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{Success: true, Message: "contract deleted"})
}

// ListReviews lists unmatched-name reviews.
func (ac *AdminController) ListReviews(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	reviews, total, err := ac.adminService.ListReviews(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LIST_FAILED",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.ReviewListResponse{
		Reviews: reviews,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// ApproveReview resolves a review and teaches the mapping the alias.
func (ac *AdminController) ApproveReview(c *gin.Context) {
	var req requests.ReviewApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	review, err := ac.adminService.ApproveReview(c.Request.Context(), c.Param("reviewID"), req.Key, req.ReviewerID)
	if errors.Is(err, services.ErrReviewNotFound) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "REVIEW_NOT_FOUND",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "APPROVE_FAILED",
			Message: err.Error(),
		})
		return
	}

	// Learned alias changed the mapping; cached resolutions are stale.
	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		ac.logger.Warn("cache clear after alias learn failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "review approved",
		Data:    review,
	})
}

// RejectReview marks a review as not mappable.
func (ac *AdminController) RejectReview(c *gin.Context) {
	var req requests.ReviewRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	review, err := ac.adminService.RejectReview(c.Request.Context(), c.Param("reviewID"), req.ReviewerID)
	if errors.Is(err, services.ErrReviewNotFound) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "REVIEW_NOT_FOUND",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REJECT_FAILED",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "review rejected",
		Data:    review,
	})
}

// GetStats reports the admin snapshot plus cache counters.
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.adminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_FAILED",
			Message: err.Error(),
		})
		return
	}

	cacheStats, err := ac.cacheService.GetStats(c.Request.Context())
	if err != nil {
		ac.logger.Warn("cache stats unavailable", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.AdminStatsResponse{
		Stats: stats,
		Cache: cacheStats,
	})
}

// InvalidateCache clears the resolution cache.
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_CLEAR_FAILED",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{Success: true, Message: "resolution cache cleared"})
}

// ReloadDataset re-pulls the customer records from the remote store.
func (ac *AdminController) ReloadDataset(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := ac.dashboard.LoadRecords(ctx); err != nil {
		c.JSON(http.StatusBadGateway, responses.ErrorResponse{
			Error:   "RELOAD_FAILED",
			Message: err.Error(),
		})
		return
	}
	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		ac.logger.Warn("cache clear after reload failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "dataset reloaded",
		Data:    gin.H{"dataset_version": ac.dashboard.DatasetVersion()},
	})
}
