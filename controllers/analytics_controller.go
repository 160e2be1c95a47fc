package controllers

import (
	"github.com/gin-gonic/gin"

	"trendkart/services"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GetStats godoc
// @Summary Dashboard stats
// @Description Totals, orders by status, and sales for the last 30 days (Admin)
// @Tags Admin - Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/stats [get]
func (ctrl *AnalyticsController) GetStats(c *gin.Context) {
	stats, err := ctrl.analytics.Stats(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Stats retrieved", "data": stats})
}

// GetRevenue godoc
// @Summary Revenue analytics
// @Description Revenue bucketed by day (30), week (12), and month (12) (Admin)
// @Tags Admin - Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/analytics/revenue [get]
func (ctrl *AnalyticsController) GetRevenue(c *gin.Context) {
	report, err := ctrl.analytics.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to compute revenue analytics"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Revenue analytics retrieved", "data": report})
}

// GetUsers godoc
// @Summary User analytics
// @Description New user counts for the last 12 months (Admin)
// @Tags Admin - Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/analytics/users [get]
func (ctrl *AnalyticsController) GetUsers(c *gin.Context) {
	report, err := ctrl.analytics.Users(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to compute user analytics"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User analytics retrieved", "data": report})
}

// GetRefunds godoc
// @Summary Refund analytics
// @Description Refund totals, 30-day trend, and reason breakdown (Admin)
// @Tags Admin - Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/analytics/refunds [get]
func (ctrl *AnalyticsController) GetRefunds(c *gin.Context) {
	report, err := ctrl.analytics.Refunds(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to compute refund analytics"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Refund analytics retrieved", "data": report})
}
