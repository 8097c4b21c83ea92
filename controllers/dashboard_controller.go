package controllers

import (
	"vigia/services"
	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSnapshot returns the current dashboard snapshot
// @Summary Dashboard snapshot
// @Description Get aggregated fleet counts, trips and recent alerts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DashboardSnapshot}
// @Failure 502 {object} models.APIResponse
// @Router /dashboard [get]
func (dc *DashboardController) GetSnapshot(c *gin.Context) {
	snapshot, err := dc.dashboardService.Current(c.Request.Context())
	if err != nil {
		if snapshot != nil {
			// Upstream is down but we still hold the last good snapshot
			logrus.Warnf("Dashboard refresh failed, serving retained snapshot: %v", err)
			utils.SuccessResponse(c, "Dashboard snapshot (stale)", snapshot)
			return
		}
		logrus.Errorf("Dashboard snapshot failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard snapshot retrieved", snapshot)
}

// RefreshSnapshot forces an immediate dashboard refresh
// @Summary Refresh dashboard
// @Description Re-fetch all dashboard data from the fleet API now
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DashboardSnapshot}
// @Failure 502 {object} models.APIResponse
// @Router /dashboard/refresh [post]
func (dc *DashboardController) RefreshSnapshot(c *gin.Context) {
	snapshot, err := dc.dashboardService.Refresh(c.Request.Context())
	if err != nil {
		logrus.Errorf("Dashboard refresh failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard refreshed", snapshot)
}
