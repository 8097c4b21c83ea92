package services

import (
	"context"
	"testing"
	"vigia/client"
	"vigia/models"
	"vigia/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveTrips_FiltersEndedTrips(t *testing.T) {
	api := &mockFleetAPI{
		listTripsFn: func(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
			return []models.Trip{
				{ID: 1, DriverID: 1},
				{ID: 2, DriverID: 2, EndTime: endedAt("2025-03-13T18:00:00")},
				{ID: 3, DriverID: 3, EndTime: &models.Timestamp{}}, // unparseable end == active
			}, nil
		},
	}
	svc := NewTripService(api)

	active, err := svc.ActiveTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].ID)
	assert.Equal(t, 3, active[1].ID)
}

func TestActiveTripFor_NotFoundMeansIdle(t *testing.T) {
	api := &mockFleetAPI{
		activeTripByDriverFn: func(ctx context.Context, driverID int) (*models.Trip, error) {
			return nil, client.ErrNoActiveTrip
		},
	}
	svc := NewTripService(api)

	trip, err := svc.ActiveTripFor(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, trip)
}

func TestActiveTripFor_RealErrorsPropagate(t *testing.T) {
	api := &mockFleetAPI{
		activeTripByDriverFn: func(ctx context.Context, driverID int) (*models.Trip, error) {
			return nil, &client.APIError{StatusCode: 500, Message: "boom"}
		},
	}
	svc := NewTripService(api)

	trip, err := svc.ActiveTripFor(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, trip)
}

func TestResolveActiveTrips_PerDriverDegradation(t *testing.T) {
	api := &mockFleetAPI{
		activeTripByDriverFn: func(ctx context.Context, driverID int) (*models.Trip, error) {
			switch driverID {
			case 1:
				return &models.Trip{ID: 10, DriverID: 1}, nil
			case 2:
				return nil, client.ErrNoActiveTrip
			default:
				return nil, &client.APIError{StatusCode: 500, Message: "boom"}
			}
		},
	}
	svc := NewTripService(api)

	drivers := []models.Driver{{ID: 1}, {ID: 2}, {ID: 3}}
	active := svc.ResolveActiveTrips(context.Background(), drivers)

	require.Len(t, active, 3)
	require.NotNil(t, active[1])
	assert.Equal(t, 10, active[1].ID)
	assert.Nil(t, active[2])
	assert.Nil(t, active[3], "a failed lookup degrades to no active trip")
}

func TestStartTrip_ValidationRejectsZeroDriver(t *testing.T) {
	called := false
	api := &mockFleetAPI{
		startTripFn: func(ctx context.Context, req models.StartTripRequest) (*models.Trip, error) {
			called = true
			return &models.Trip{ID: 1, DriverID: req.DriverID}, nil
		},
	}
	svc := NewTripService(api)

	trip, err := svc.Start(context.Background(), models.StartTripRequest{DriverID: 0})
	require.Error(t, err)
	assert.Nil(t, trip)
	assert.False(t, called, "upstream must not be hit on invalid input")

	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestStartTrip_PassesThrough(t *testing.T) {
	vehicleID := 4
	api := &mockFleetAPI{
		startTripFn: func(ctx context.Context, req models.StartTripRequest) (*models.Trip, error) {
			assert.Equal(t, 7, req.DriverID)
			require.NotNil(t, req.VehicleID)
			assert.Equal(t, 4, *req.VehicleID)
			return &models.Trip{ID: 42, DriverID: 7, VehicleID: req.VehicleID}, nil
		},
	}
	svc := NewTripService(api)

	trip, err := svc.Start(context.Background(), models.StartTripRequest{DriverID: 7, VehicleID: &vehicleID})
	require.NoError(t, err)
	assert.Equal(t, 42, trip.ID)
}
