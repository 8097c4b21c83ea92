package controllers

import (
	"strconv"

	"vigia/models"
	"vigia/services"
	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type VehicleController struct {
	vehicleService *services.VehicleService
}

func NewVehicleController(vehicleService *services.VehicleService) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
	}
}

// GetVehicles lists vehicles
// @Summary List vehicles
// @Description Get registered vehicles
// @Tags Vehicles
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Max vehicles" default(100)
// @Success 200 {object} models.APIResponse{data=[]models.Vehicle}
// @Failure 502 {object} models.APIResponse
// @Router /vehicles [get]
func (vc *VehicleController) GetVehicles(c *gin.Context) {
	skip := 0
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	limit := parseLimit(c, 100)

	vehicles, err := vc.vehicleService.List(c.Request.Context(), skip, limit)
	if err != nil {
		logrus.Errorf("List vehicles failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved", vehicles)
}

// CreateVehicle registers a vehicle
// @Summary Create vehicle
// @Description Register a new vehicle with its device token
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body models.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} models.APIResponse{data=models.Vehicle}
// @Failure 400 {object} models.APIResponse
// @Router /vehicles [post]
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	vehicle, err := vc.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		logrus.Errorf("Create vehicle failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}
