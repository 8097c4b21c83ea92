package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vigia/interfaces"
	"vigia/models"
	"vigia/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFleetAPI overrides just the feed loads; calling anything else
// panics, which is what a test would want anyway.
type stubFleetAPI struct {
	interfaces.FleetAPI
	alerts  []models.Alert
	trips   []models.Trip
	drivers []models.Driver
}

func (s *stubFleetAPI) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	return s.alerts, nil
}

func (s *stubFleetAPI) ListTrips(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
	return s.trips, nil
}

func (s *stubFleetAPI) ListDrivers(ctx context.Context, limit int) ([]models.Driver, error) {
	return s.drivers, nil
}

func newAlertRouter(api interfaces.FleetAPI) (*gin.Engine, *services.AlertService) {
	gin.SetMode(gin.TestMode)

	alertService := services.NewAlertService(api)
	controller := NewAlertController(alertService)

	router := gin.New()
	router.GET("/alerts", controller.GetFeed)
	router.GET("/alerts/types", controller.GetTypes)
	router.POST("/alerts/:id/dismiss", controller.DismissAlert)
	return router, alertService
}

func TestGetFeed_PriorityQueryParam(t *testing.T) {
	api := &stubFleetAPI{
		alerts: []models.Alert{
			{ID: 1, TripID: 10, Type: "SOMNOLENCIA"},
			{ID: 2, TripID: 10, Type: "BOSTEZO"},
		},
	}
	router, _ := newAlertRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts?prioridad=critical", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool             `json:"success"`
		Data    models.AlertFeed `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)

	require.Len(t, response.Data.Items, 1)
	assert.Equal(t, 1, response.Data.Items[0].Alert.ID)
	// Statistics stay unfiltered.
	assert.Equal(t, 2, response.Data.Statistics.Total)
}

func TestDismissAlert(t *testing.T) {
	api := &stubFleetAPI{alerts: []models.Alert{{ID: 5, Type: "BOSTEZO"}}}
	router, alertService := newAlertRouter(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alerts/5/dismiss", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, alertService.IsDismissed(5))

	// Non-numeric IDs are rejected before touching the service.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/alerts/abc/dismiss", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTypes(t *testing.T) {
	router, _ := newAlertRouter(&stubFleetAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts/types", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.AlertTypeInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data)
	assert.Equal(t, models.PriorityCritical, response.Data[0].Priority)
}
