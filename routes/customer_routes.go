package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/controllers"
	"github.com/advisorhub/agentcrm/middleware"
)

// RegisterCustomerRoutes registers the customer book routes.
func RegisterCustomerRoutes(router *gin.Engine) {
	customerRoutes := router.Group("/api/customers")
	customerRoutes.Use(middleware.AuthMiddleware())

	customerRoutes.GET("/", controllers.GetCustomerList)
	customerRoutes.GET("/filter-options", controllers.GetFilterOptions)
	customerRoutes.POST("/", controllers.CreateCustomer)
	customerRoutes.GET("/:id", controllers.GetCustomerDetail)
	customerRoutes.PUT("/:id", controllers.UpdateCustomer)
	customerRoutes.PUT("/:id/vehicles", controllers.ReplaceCustomerVehicles)
}
