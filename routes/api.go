package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/region-dashboard/app/controllers"
)

// SetupAPIRoutes registers all API routes
func SetupAPIRoutes(router *gin.Engine, dashboardController *controllers.DashboardController, adminController *controllers.AdminController) {
	// API v1 group
	v1 := router.Group("/v1")
	{
		// Region resolution routes
		regions := v1.Group("/regions")
		{
			regions.POST("/resolve", dashboardController.ResolveRegion)
			regions.POST("/resolve/batch", dashboardController.BatchResolve)
			regions.GET("/aggregates", dashboardController.GetAggregates)
			regions.GET("/search", dashboardController.SearchRegions)
		}

		// Customer dataset routes
		v1.GET("/customers", dashboardController.ListCustomers)

		// Contract overlay routes
		contracts := v1.Group("/contracts")
		{
			contracts.GET("", adminController.ListContracts)
			contracts.GET("/:name", adminController.GetContract)
			contracts.PUT("/:name", adminController.UpsertContract)
			contracts.DELETE("/:name", adminController.DeleteContract)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.GET("/reviews", adminController.ListReviews)
			admin.POST("/reviews/:reviewID/approve", adminController.ApproveReview)
			admin.POST("/reviews/:reviewID/reject", adminController.RejectReview)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.POST("/dataset/reload", adminController.ReloadDataset)
			admin.GET("/stats", adminController.GetStats)
		}

		// Health check route
		v1.GET("/health", dashboardController.HealthCheck)
	}
}

// SetupHealthRoutes registers health check routes
func SetupHealthRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	// Root health check
	router.GET("/health", dashboardController.HealthCheck)

	// Readiness check
	router.GET("/ready", dashboardController.HealthCheck)

	// Liveness check
	router.GET("/live", dashboardController.HealthCheck)
}

// SetupAllRoutes registers every route group
func SetupAllRoutes(router *gin.Engine, dashboardController *controllers.DashboardController, adminController *controllers.AdminController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, dashboardController)
	SetupAPIRoutes(router, dashboardController, adminController)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware attaches router-wide middleware
func setupMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(gin.Recovery())

	// Logger middleware
	router.Use(gin.Logger())
}
