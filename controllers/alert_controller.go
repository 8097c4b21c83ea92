package controllers

import (
	"strconv"

	"vigia/models"
	"vigia/services"
	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AlertController struct {
	alertService *services.AlertService
}

func NewAlertController(alertService *services.AlertService) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// =================== ALERT FEED ===================

// GetFeed returns the filtered alert feed with statistics
// @Summary Alert feed
// @Description Get recent alerts joined with driver and vehicle data
// @Tags Alerts
// @Produce json
// @Param tipo query string false "Filter by alert type"
// @Param prioridad query string false "Filter by priority (criticas, advertencias, informativas)"
// @Param periodo query string false "Date range (todas, hoy, semana, mes, personalizado)"
// @Param desde query string false "Custom range start (YYYY-MM-DD)"
// @Param hasta query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} models.APIResponse{data=models.AlertFeed}
// @Failure 502 {object} models.APIResponse
// @Router /alerts [get]
func (ac *AlertController) GetFeed(c *gin.Context) {
	var filter models.AlertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid filter parameters")
		return
	}

	feed, err := ac.alertService.Feed(c.Request.Context(), filter)
	if err != nil {
		logrus.Errorf("Alert feed failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Alert feed retrieved", feed)
}

// GetMap returns alerts as map points with bounds
// @Summary Alert map
// @Description Get georeferenced alerts for the map view
// @Tags Alerts
// @Produce json
// @Param tipo query string false "Filter by alert type"
// @Param prioridad query string false "Filter by priority"
// @Param periodo query string false "Date range"
// @Success 200 {object} models.APIResponse{data=models.AlertMap}
// @Failure 502 {object} models.APIResponse
// @Router /alerts/points [get]
func (ac *AlertController) GetMap(c *gin.Context) {
	var filter models.AlertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid filter parameters")
		return
	}

	alertMap, err := ac.alertService.Map(c.Request.Context(), filter)
	if err != nil {
		logrus.Errorf("Alert map failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Alert map retrieved", alertMap)
}

// GetStatistics returns aggregate alert counters
// @Summary Alert statistics
// @Description Get total, today and critical alert counts broken down by type
// @Tags Alerts
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.AlertStatistics}
// @Failure 502 {object} models.APIResponse
// @Router /alerts/stats [get]
func (ac *AlertController) GetStatistics(c *gin.Context) {
	feed, err := ac.alertService.Feed(c.Request.Context(), models.AlertFilter{})
	if err != nil {
		logrus.Errorf("Alert statistics failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Alert statistics retrieved", feed.Statistics)
}

// =================== ALERT ACTIONS ===================

// DismissAlert hides an alert from subsequent feeds
// @Summary Dismiss alert
// @Description Mark an alert as dismissed for this session
// @Tags Alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /alerts/{id}/dismiss [post]
func (ac *AlertController) DismissAlert(c *gin.Context) {
	alertID, err := strconv.Atoi(c.Param("id"))
	if err != nil || alertID < 1 {
		utils.BadRequestResponse(c, "Invalid alert ID")
		return
	}

	ac.alertService.Dismiss(alertID)
	logrus.Infof("Alert %d dismissed", alertID)

	utils.SuccessResponse(c, "Alert dismissed", gin.H{
		"id_alerta": alertID,
		"dismissed": true,
	})
}

// GetTypes returns the alert-type catalog used for filters and legends
// @Summary Alert types
// @Description Get known alert types with labels, colors and priorities
// @Tags Alerts
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.AlertTypeInfo}
// @Router /alerts/types [get]
func (ac *AlertController) GetTypes(c *gin.Context) {
	utils.SuccessResponse(c, "Alert types retrieved", models.KnownAlertTypes())
}
