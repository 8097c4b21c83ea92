package services

import (
	"context"
	"testing"
	"time"
	"vigia/client"
	"vigia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endedAt(value string) *models.Timestamp {
	t := ts(value)
	return &t
}

func TestRefresh_ComputesSnapshot(t *testing.T) {
	drivers := []models.Driver{
		{ID: 1, Name: "Ana Quishpe", Active: true},
		{ID: 2, Name: "Luis Vega", Active: false},
	}
	vehicles := []models.Vehicle{
		{ID: 1, Name: "Camión 1", Active: true},
		{ID: 2, Name: "Camión 2", Active: true},
	}
	trips := []models.Trip{
		{ID: 10, DriverID: 1},
		{ID: 11, DriverID: 2, EndTime: endedAt("2025-03-13T18:00:00")},
	}
	alerts := []models.Alert{
		{ID: 100, TripID: 10, Type: "SOMNOLENCIA", Timestamp: ts("2025-03-14T08:30:00")},
		{ID: 101, TripID: 11, Type: "BOSTEZO", Timestamp: ts("2025-03-12T10:00:00")},
	}

	api := &mockFleetAPI{
		listDriversFn: func(ctx context.Context, limit int) ([]models.Driver, error) {
			return drivers, nil
		},
		listVehiclesFn: func(ctx context.Context, skip, limit int) ([]models.Vehicle, error) {
			return vehicles, nil
		},
		listTripsFn: func(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
			return trips, nil
		},
		recentAlertsFn: func(ctx context.Context, limit int) ([]models.Alert, error) {
			return alerts, nil
		},
	}
	svc := NewDashboardService(api)
	svc.now = func() time.Time { return testNow }

	snapshot, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.TotalDrivers)
	assert.Equal(t, 1, snapshot.ActiveDrivers)
	assert.Equal(t, 2, snapshot.TotalVehicles)
	assert.Equal(t, 2, snapshot.ActiveVehicles)
	assert.Equal(t, 2, snapshot.TotalTrips)
	assert.Equal(t, 1, snapshot.ActiveTrips)
	assert.Equal(t, 1, snapshot.CompletedTrips)
	assert.Equal(t, 2, snapshot.TotalAlerts)
	assert.Equal(t, 1, snapshot.TodayAlerts)
	assert.Equal(t, map[string]int{"SOMNOLENCIA": 1, "BOSTEZO": 1}, snapshot.AlertsByType)

	// Only in-progress trips ride along.
	require.Len(t, snapshot.Trips, 1)
	assert.Equal(t, 10, snapshot.Trips[0].ID)
	assert.Len(t, snapshot.RecentAlerts, 2)
}

func TestRefresh_RecentAlertsCapped(t *testing.T) {
	alerts := make([]models.Alert, 25)
	for i := range alerts {
		alerts[i] = models.Alert{ID: i + 1, Type: "BOSTEZO"}
	}

	api := &mockFleetAPI{
		recentAlertsFn: func(ctx context.Context, limit int) ([]models.Alert, error) {
			return alerts, nil
		},
	}
	svc := NewDashboardService(api)

	snapshot, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.RecentAlerts, snapshotRecentAlerts)
	assert.Equal(t, 25, snapshot.TotalAlerts)
}

func TestCurrent_FallsBackToRetainedSnapshot(t *testing.T) {
	failing := false
	api := &mockFleetAPI{
		listDriversFn: func(ctx context.Context, limit int) ([]models.Driver, error) {
			if failing {
				return nil, &client.APIError{StatusCode: 503, Message: "upstream down"}
			}
			return []models.Driver{{ID: 1, Name: "Ana Quishpe", Active: true}}, nil
		},
	}
	svc := NewDashboardService(api)

	first, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.TotalDrivers)

	failing = true
	second, err := svc.Current(context.Background())
	require.Error(t, err)
	require.NotNil(t, second, "retained snapshot should survive the failed refresh")
	assert.Equal(t, 1, second.TotalDrivers)
}

func TestCurrent_NoSnapshotEver(t *testing.T) {
	api := &mockFleetAPI{
		listDriversFn: func(ctx context.Context, limit int) ([]models.Driver, error) {
			return nil, &client.APIError{StatusCode: 503, Message: "upstream down"}
		},
	}
	svc := NewDashboardService(api)

	snapshot, err := svc.Current(context.Background())
	require.Error(t, err)
	assert.Nil(t, snapshot)
}
