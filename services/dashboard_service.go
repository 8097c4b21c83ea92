package services

import (
	"context"
	"sync"
	"time"
	"vigia/interfaces"
	"vigia/models"
)

// Snapshot fetch sizes, matching the landing page loads.
const (
	snapshotDriverLimit  = 100
	snapshotVehicleLimit = 100
	snapshotTripLimit    = 1000
	snapshotAlertLimit   = 100
	snapshotRecentAlerts = 10
)

// DashboardService combines fresh driver/vehicle/trip/alert snapshots
// into the landing-page counters. Stateless between refreshes except for
// the last successful snapshot, retained for display while a refresh is
// in flight or after one fails.
type DashboardService struct {
	api interfaces.FleetAPI

	mu   sync.RWMutex
	last *models.DashboardSnapshot

	now func() time.Time
}

func NewDashboardService(api interfaces.FleetAPI) *DashboardService {
	return &DashboardService{
		api: api,
		now: time.Now,
	}
}

// Refresh recomputes the snapshot from fresh upstream data and retains
// it as the new last-known-good.
func (ds *DashboardService) Refresh(ctx context.Context) (*models.DashboardSnapshot, error) {
	drivers, err := ds.api.ListDrivers(ctx, snapshotDriverLimit)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	vehicles, err := ds.api.ListVehicles(ctx, 0, snapshotVehicleLimit)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	trips, err := ds.api.ListTrips(ctx, 0, snapshotTripLimit, nil)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	alerts, err := ds.api.RecentAlerts(ctx, snapshotAlertLimit)
	if err != nil {
		return nil, wrapUpstream(err)
	}

	snapshot := ds.compute(drivers, vehicles, trips, alerts)

	ds.mu.Lock()
	ds.last = &snapshot
	ds.mu.Unlock()

	return &snapshot, nil
}

// Current refreshes and falls back to the retained snapshot when the
// refresh fails. The error is returned alongside so callers can report
// staleness; a nil snapshot means there has never been a good one.
func (ds *DashboardService) Current(ctx context.Context) (*models.DashboardSnapshot, error) {
	snapshot, err := ds.Refresh(ctx)
	if err != nil {
		return ds.Last(), err
	}
	return snapshot, nil
}

// Last returns the most recent successfully computed snapshot, or nil.
func (ds *DashboardService) Last() *models.DashboardSnapshot {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.last
}

func (ds *DashboardService) compute(drivers []models.Driver, vehicles []models.Vehicle, trips []models.Trip, alerts []models.Alert) models.DashboardSnapshot {
	now := ds.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	snapshot := models.DashboardSnapshot{
		TotalDrivers:  len(drivers),
		TotalVehicles: len(vehicles),
		TotalTrips:    len(trips),
		TotalAlerts:   len(alerts),
		AlertsByType:  make(map[string]int),
		Drivers:       drivers,
		TakenAt:       now,
	}

	for _, d := range drivers {
		if d.Active {
			snapshot.ActiveDrivers++
		}
	}
	for _, v := range vehicles {
		if v.Active {
			snapshot.ActiveVehicles++
		}
	}

	active := make([]models.Trip, 0)
	for _, t := range trips {
		if t.IsActive() {
			snapshot.ActiveTrips++
			active = append(active, t)
		} else {
			snapshot.CompletedTrips++
		}
	}
	snapshot.Trips = active

	for _, a := range alerts {
		if a.Timestamp.AtOrAfter(midnight) {
			snapshot.TodayAlerts++
		}
		snapshot.AlertsByType[a.Type]++
	}

	recent := snapshotRecentAlerts
	if len(alerts) < recent {
		recent = len(alerts)
	}
	snapshot.RecentAlerts = alerts[:recent]

	return snapshot
}
