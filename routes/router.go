package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up all API routes.
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)
	RegisterCustomerRoutes(router)
	RegisterAgentRoutes(router)
	RegisterDashboardStatsRoutes(router)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
