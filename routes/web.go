package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the landing and docs routes
func SetupWebRoutes(router *gin.Engine) {
	// Web routes group
	web := router.Group("/")
	{
		// Home page
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Region Dashboard Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		// API documentation
		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Region Dashboard API v1",
				"endpoints": map[string]string{
					"resolve":       "POST /v1/regions/resolve",
					"batch_resolve": "POST /v1/regions/resolve/batch",
					"aggregates":    "GET /v1/regions/aggregates",
					"search":        "GET /v1/regions/search",
					"customers":     "GET /v1/customers",
					"contracts":     "GET /v1/contracts",
					"reviews":       "GET /v1/admin/reviews",
					"health":        "GET /v1/health",
				},
			})
		})

		// Status page
		web.GET("/status", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "running",
				"service": "Region Dashboard",
			})
		})
	}
}
