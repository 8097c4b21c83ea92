package services

import (
	"context"
	"vigia/interfaces"
	"vigia/models"
)

// mockFleetAPI is a hand-written FleetAPI stub: set only the funcs a
// test exercises, everything else returns zero values.
type mockFleetAPI struct {
	listDriversFn  func(ctx context.Context, limit int) ([]models.Driver, error)
	getDriverFn    func(ctx context.Context, driverID int) (*models.Driver, error)
	createDriverFn func(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error)
	updateDriverFn func(ctx context.Context, driverID int, req models.UpdateDriverRequest) (*models.Driver, error)
	deleteDriverFn func(ctx context.Context, driverID int) error

	listTripsFn          func(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error)
	getTripFn            func(ctx context.Context, tripID int) (*models.Trip, error)
	activeTripByDriverFn func(ctx context.Context, driverID int) (*models.Trip, error)
	startTripFn          func(ctx context.Context, req models.StartTripRequest) (*models.Trip, error)
	finalizeTripFn       func(ctx context.Context, tripID int) (*models.Trip, error)
	tripStatsFn          func(ctx context.Context, tripID int) (*models.TripStats, error)

	recentAlertsFn func(ctx context.Context, limit int) ([]models.Alert, error)
	alertsByTripFn func(ctx context.Context, tripID int) ([]models.Alert, error)

	listVehiclesFn  func(ctx context.Context, skip, limit int) ([]models.Vehicle, error)
	createVehicleFn func(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error)
}

var _ interfaces.FleetAPI = (*mockFleetAPI)(nil)

func (m *mockFleetAPI) ListDrivers(ctx context.Context, limit int) ([]models.Driver, error) {
	if m.listDriversFn != nil {
		return m.listDriversFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockFleetAPI) GetDriver(ctx context.Context, driverID int) (*models.Driver, error) {
	if m.getDriverFn != nil {
		return m.getDriverFn(ctx, driverID)
	}
	return nil, nil
}

func (m *mockFleetAPI) CreateDriver(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error) {
	if m.createDriverFn != nil {
		return m.createDriverFn(ctx, req)
	}
	return nil, nil
}

func (m *mockFleetAPI) UpdateDriver(ctx context.Context, driverID int, req models.UpdateDriverRequest) (*models.Driver, error) {
	if m.updateDriverFn != nil {
		return m.updateDriverFn(ctx, driverID, req)
	}
	return nil, nil
}

func (m *mockFleetAPI) DeleteDriver(ctx context.Context, driverID int) error {
	if m.deleteDriverFn != nil {
		return m.deleteDriverFn(ctx, driverID)
	}
	return nil
}

func (m *mockFleetAPI) ListTrips(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
	if m.listTripsFn != nil {
		return m.listTripsFn(ctx, skip, limit, driverID)
	}
	return nil, nil
}

func (m *mockFleetAPI) GetTrip(ctx context.Context, tripID int) (*models.Trip, error) {
	if m.getTripFn != nil {
		return m.getTripFn(ctx, tripID)
	}
	return nil, nil
}

func (m *mockFleetAPI) ActiveTripByDriver(ctx context.Context, driverID int) (*models.Trip, error) {
	if m.activeTripByDriverFn != nil {
		return m.activeTripByDriverFn(ctx, driverID)
	}
	return nil, nil
}

func (m *mockFleetAPI) StartTrip(ctx context.Context, req models.StartTripRequest) (*models.Trip, error) {
	if m.startTripFn != nil {
		return m.startTripFn(ctx, req)
	}
	return nil, nil
}

func (m *mockFleetAPI) FinalizeTrip(ctx context.Context, tripID int) (*models.Trip, error) {
	if m.finalizeTripFn != nil {
		return m.finalizeTripFn(ctx, tripID)
	}
	return nil, nil
}

func (m *mockFleetAPI) TripStats(ctx context.Context, tripID int) (*models.TripStats, error) {
	if m.tripStatsFn != nil {
		return m.tripStatsFn(ctx, tripID)
	}
	return nil, nil
}

func (m *mockFleetAPI) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	if m.recentAlertsFn != nil {
		return m.recentAlertsFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockFleetAPI) AlertsByTrip(ctx context.Context, tripID int) ([]models.Alert, error) {
	if m.alertsByTripFn != nil {
		return m.alertsByTripFn(ctx, tripID)
	}
	return nil, nil
}

func (m *mockFleetAPI) ListVehicles(ctx context.Context, skip, limit int) ([]models.Vehicle, error) {
	if m.listVehiclesFn != nil {
		return m.listVehiclesFn(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockFleetAPI) CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if m.createVehicleFn != nil {
		return m.createVehicleFn(ctx, req)
	}
	return nil, nil
}
