package services

import (
	"context"
	"errors"
	"vigia/client"
	"vigia/interfaces"
	"vigia/models"
	"vigia/utils"

	"github.com/sirupsen/logrus"
)

// TripService handles trip lifecycle operations and the per-driver
// active-trip resolution used by the drivers table.
type TripService struct {
	api interfaces.FleetAPI
}

func NewTripService(api interfaces.FleetAPI) *TripService {
	return &TripService{api: api}
}

func (ts *TripService) List(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
	trips, err := ts.api.ListTrips(ctx, skip, limit, driverID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return trips, nil
}

// ActiveTrips lists in-progress trips: the backend has no dedicated
// endpoint, so this filters the trip list on the null-end-time invariant.
func (ts *TripService) ActiveTrips(ctx context.Context) ([]models.Trip, error) {
	trips, err := ts.api.ListTrips(ctx, 0, feedTripLimit, nil)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	active := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	return active, nil
}

func (ts *TripService) Details(ctx context.Context, tripID int) (*models.Trip, error) {
	trip, err := ts.api.GetTrip(ctx, tripID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return trip, nil
}

func (ts *TripService) Start(ctx context.Context, req models.StartTripRequest) (*models.Trip, error) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewBadRequestError(validationErrors[0].Message)
	}

	trip, err := ts.api.StartTrip(ctx, req)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	logrus.Infof("Trip %d started for driver %d", trip.ID, trip.DriverID)
	return trip, nil
}

func (ts *TripService) End(ctx context.Context, tripID int) (*models.Trip, error) {
	trip, err := ts.api.FinalizeTrip(ctx, tripID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	logrus.Infof("Trip %d finalized", tripID)
	return trip, nil
}

func (ts *TripService) Stats(ctx context.Context, tripID int) (*models.TripStats, error) {
	stats, err := ts.api.TripStats(ctx, tripID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return stats, nil
}

func (ts *TripService) Alerts(ctx context.Context, tripID int) ([]models.Alert, error) {
	alerts, err := ts.api.AlertsByTrip(ctx, tripID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return alerts, nil
}

// ActiveTripFor wraps the active-trip lookup: a nil trip with nil error
// means "no active trip", the one place where 404 is an expected outcome.
func (ts *TripService) ActiveTripFor(ctx context.Context, driverID int) (*models.Trip, error) {
	trip, err := ts.api.ActiveTripByDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, client.ErrNoActiveTrip) {
			return nil, nil
		}
		return nil, wrapUpstream(err)
	}
	return trip, nil
}

// ResolveActiveTrips fans out one active-trip lookup per driver,
// sequentially. A failure for one driver degrades to "no active trip"
// for that row without aborting the rest. The backend is trusted to keep
// at most one active trip per driver; the first result wins regardless.
func (ts *TripService) ResolveActiveTrips(ctx context.Context, drivers []models.Driver) map[int]*models.Trip {
	active := make(map[int]*models.Trip, len(drivers))

	for _, driver := range drivers {
		if _, done := active[driver.ID]; done {
			continue
		}

		trip, err := ts.ActiveTripFor(ctx, driver.ID)
		if err != nil {
			logrus.Warnf("Active trip lookup failed for driver %d: %v", driver.ID, err)
			active[driver.ID] = nil
			continue
		}
		active[driver.ID] = trip
	}

	return active
}
