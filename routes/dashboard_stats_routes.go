package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/controllers"
	"github.com/advisorhub/agentcrm/middleware"
)

// RegisterDashboardStatsRoutes registers the dashboard counters route.
func RegisterDashboardStatsRoutes(router *gin.Engine) {
	statsRoutes := router.Group("/api/dashboard-stats")
	statsRoutes.Use(middleware.AuthMiddleware())

	statsRoutes.GET("/", controllers.GetDashboardStats)
}
