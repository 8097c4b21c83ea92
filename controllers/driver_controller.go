package controllers

import (
	"strconv"

	"vigia/models"
	"vigia/services"
	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DriverController struct {
	driverService *services.DriverService
}

func NewDriverController(driverService *services.DriverService) *DriverController {
	return &DriverController{
		driverService: driverService,
	}
}

// =================== DRIVER LISTING ===================

// GetDrivers lists drivers
// @Summary List drivers
// @Description Get registered drivers
// @Tags Drivers
// @Produce json
// @Param limit query int false "Max drivers" default(100)
// @Success 200 {object} models.APIResponse{data=[]models.Driver}
// @Failure 502 {object} models.APIResponse
// @Router /drivers [get]
func (dc *DriverController) GetDrivers(c *gin.Context) {
	limit := parseLimit(c, 100)

	drivers, err := dc.driverService.List(c.Request.Context(), limit)
	if err != nil {
		logrus.Errorf("List drivers failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Drivers retrieved", drivers)
}

// GetDriverRows lists drivers paired with their active trip
// @Summary Driver monitoring rows
// @Description Get drivers with the active trip each one is on, if any
// @Tags Drivers
// @Produce json
// @Param limit query int false "Max drivers" default(100)
// @Success 200 {object} models.APIResponse{data=[]models.DriverRow}
// @Failure 502 {object} models.APIResponse
// @Router /drivers/monitoring [get]
func (dc *DriverController) GetDriverRows(c *gin.Context) {
	limit := parseLimit(c, 100)

	rows, err := dc.driverService.Rows(c.Request.Context(), limit)
	if err != nil {
		logrus.Errorf("Driver rows failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver monitoring rows retrieved", rows)
}

// GetDriver gets one driver
// @Summary Get driver
// @Description Get a driver by ID
// @Tags Drivers
// @Produce json
// @Param id path int true "Driver ID"
// @Success 200 {object} models.APIResponse{data=models.Driver}
// @Failure 404 {object} models.APIResponse
// @Router /drivers/{id} [get]
func (dc *DriverController) GetDriver(c *gin.Context) {
	driverID, err := strconv.Atoi(c.Param("id"))
	if err != nil || driverID < 1 {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	driver, err := dc.driverService.Get(c.Request.Context(), driverID)
	if err != nil {
		logrus.Errorf("Get driver %d failed: %v", driverID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver retrieved", driver)
}

// =================== DRIVER MANAGEMENT ===================

// CreateDriver registers a driver
// @Summary Create driver
// @Description Register a new driver in the fleet
// @Tags Drivers
// @Accept json
// @Produce json
// @Param request body models.CreateDriverRequest true "Driver data"
// @Success 201 {object} models.APIResponse{data=models.Driver}
// @Failure 400 {object} models.APIResponse
// @Router /drivers [post]
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var req models.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	driver, err := dc.driverService.Create(c.Request.Context(), req)
	if err != nil {
		logrus.Errorf("Create driver failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Driver created successfully", driver)
}

// UpdateDriver partially updates a driver
// @Summary Update driver
// @Description Update driver fields; omitted fields are left unchanged
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path int true "Driver ID"
// @Param request body models.UpdateDriverRequest true "Fields to update"
// @Success 200 {object} models.APIResponse{data=models.Driver}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /drivers/{id} [put]
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	driverID, err := strconv.Atoi(c.Param("id"))
	if err != nil || driverID < 1 {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	var req models.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	driver, err := dc.driverService.Update(c.Request.Context(), driverID, req)
	if err != nil {
		logrus.Errorf("Update driver %d failed: %v", driverID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Driver updated successfully", driver)
}

// DeleteDriver removes a driver
// @Summary Delete driver
// @Description Delete a driver from the fleet
// @Tags Drivers
// @Produce json
// @Param id path int true "Driver ID"
// @Success 204
// @Failure 404 {object} models.APIResponse
// @Router /drivers/{id} [delete]
func (dc *DriverController) DeleteDriver(c *gin.Context) {
	driverID, err := strconv.Atoi(c.Param("id"))
	if err != nil || driverID < 1 {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	if err := dc.driverService.Delete(c.Request.Context(), driverID); err != nil {
		logrus.Errorf("Delete driver %d failed: %v", driverID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// parseLimit reads a positive limit query param with a fallback
func parseLimit(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return fallback
}
