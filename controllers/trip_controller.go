package controllers

import (
	"strconv"

	"vigia/models"
	"vigia/services"
	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TripController struct {
	tripService *services.TripService
}

func NewTripController(tripService *services.TripService) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// =================== TRIP LISTING ===================

// GetTrips lists trips
// @Summary List trips
// @Description Get trips, optionally filtered by driver
// @Tags Trips
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Max trips" default(1000)
// @Param driverId query int false "Filter by driver ID"
// @Success 200 {object} models.APIResponse{data=[]models.Trip}
// @Failure 502 {object} models.APIResponse
// @Router /trips [get]
func (tc *TripController) GetTrips(c *gin.Context) {
	skip := 0
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	limit := parseLimit(c, 1000)

	var driverID *int
	if raw := c.Query("driverId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.BadRequestResponse(c, "Invalid driver ID")
			return
		}
		driverID = &parsed
	}

	trips, err := tc.tripService.List(c.Request.Context(), skip, limit, driverID)
	if err != nil {
		logrus.Errorf("List trips failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Trips retrieved", trips)
}

// GetActiveTrips lists trips still in progress
// @Summary Active trips
// @Description Get trips without an end time
// @Tags Trips
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Trip}
// @Failure 502 {object} models.APIResponse
// @Router /trips/active [get]
func (tc *TripController) GetActiveTrips(c *gin.Context) {
	trips, err := tc.tripService.ActiveTrips(c.Request.Context())
	if err != nil {
		logrus.Errorf("Active trips failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Active trips retrieved", trips)
}

// GetTrip gets one trip
// @Summary Get trip
// @Description Get a trip by ID
// @Tags Trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} models.APIResponse{data=models.Trip}
// @Failure 404 {object} models.APIResponse
// @Router /trips/{id} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	trip, err := tc.tripService.Details(c.Request.Context(), tripID)
	if err != nil {
		logrus.Errorf("Get trip %d failed: %v", tripID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Trip retrieved", trip)
}

// GetActiveTripForDriver gets a driver's current trip
// @Summary Driver's active trip
// @Description Get the trip a driver is currently on; null when idle
// @Tags Trips
// @Produce json
// @Param driverId path int true "Driver ID"
// @Success 200 {object} models.APIResponse{data=models.Trip}
// @Failure 502 {object} models.APIResponse
// @Router /trips/driver/{driverId}/active [get]
func (tc *TripController) GetActiveTripForDriver(c *gin.Context) {
	driverID, err := strconv.Atoi(c.Param("driverId"))
	if err != nil || driverID < 1 {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	trip, err := tc.tripService.ActiveTripFor(c.Request.Context(), driverID)
	if err != nil {
		logrus.Errorf("Active trip for driver %d failed: %v", driverID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	// trip is nil when the driver has no trip in progress
	utils.SuccessResponse(c, "Active trip retrieved", trip)
}

// =================== TRIP LIFECYCLE ===================

// StartTrip starts a trip for a driver
// @Summary Start trip
// @Description Begin a new trip for a driver, optionally on a vehicle
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body models.StartTripRequest true "Trip data"
// @Success 201 {object} models.APIResponse{data=models.Trip}
// @Failure 400 {object} models.APIResponse
// @Router /trips [post]
func (tc *TripController) StartTrip(c *gin.Context) {
	var req models.StartTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	trip, err := tc.tripService.Start(c.Request.Context(), req)
	if err != nil {
		logrus.Errorf("Start trip failed: %v", err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Trip started successfully", trip)
}

// EndTrip finalizes a trip
// @Summary End trip
// @Description Finalize a trip, stamping the end time as now
// @Tags Trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} models.APIResponse{data=models.Trip}
// @Failure 404 {object} models.APIResponse
// @Router /trips/{id}/end [post]
func (tc *TripController) EndTrip(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	trip, err := tc.tripService.End(c.Request.Context(), tripID)
	if err != nil {
		logrus.Errorf("End trip %d failed: %v", tripID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Trip ended successfully", trip)
}

// =================== TRIP DETAILS ===================

// GetTripStats gets a trip's aggregate statistics
// @Summary Trip statistics
// @Description Get distance, duration and alert counts for a trip
// @Tags Trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} models.APIResponse{data=models.TripStats}
// @Failure 404 {object} models.APIResponse
// @Router /trips/{id}/stats [get]
func (tc *TripController) GetTripStats(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	stats, err := tc.tripService.Stats(c.Request.Context(), tripID)
	if err != nil {
		logrus.Errorf("Trip stats %d failed: %v", tripID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Trip statistics retrieved", stats)
}

// GetTripAlerts gets the alerts raised during a trip
// @Summary Trip alerts
// @Description Get alerts recorded on a trip
// @Tags Trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} models.APIResponse{data=[]models.Alert}
// @Failure 404 {object} models.APIResponse
// @Router /trips/{id}/alerts [get]
func (tc *TripController) GetTripAlerts(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	alerts, err := tc.tripService.Alerts(c.Request.Context(), tripID)
	if err != nil {
		logrus.Errorf("Trip alerts %d failed: %v", tripID, err)
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Trip alerts retrieved", alerts)
}

func tripIDParam(c *gin.Context) (int, bool) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil || tripID < 1 {
		utils.BadRequestResponse(c, "Invalid trip ID")
		return 0, false
	}
	return tripID, true
}
