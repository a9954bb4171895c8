package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/repository"
	"github.com/advisorhub/agentcrm/service"
	"github.com/advisorhub/agentcrm/utils"
)

// GetDashboardStats returns the counters behind the dashboard cards: total
// customers, open opportunities, renewals due within 30 days and follow-ups
// due within 7 days.
func GetDashboardStats(c *gin.Context) {
	customers := repository.Customers().List()
	stats := service.Counts(customers, time.Now())

	utils.SuccessResponse(c, stats, "")
}
