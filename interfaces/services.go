package interfaces

import (
	"context"
	"vigia/models"
)

// FleetAPI is the upstream fleet backend surface the services consume.
// Implemented by client.FleetClient; hand-mocked in tests.
type FleetAPI interface {
	ListDrivers(ctx context.Context, limit int) ([]models.Driver, error)
	GetDriver(ctx context.Context, driverID int) (*models.Driver, error)
	CreateDriver(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error)
	UpdateDriver(ctx context.Context, driverID int, req models.UpdateDriverRequest) (*models.Driver, error)
	DeleteDriver(ctx context.Context, driverID int) error

	ListTrips(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error)
	GetTrip(ctx context.Context, tripID int) (*models.Trip, error)
	ActiveTripByDriver(ctx context.Context, driverID int) (*models.Trip, error)
	StartTrip(ctx context.Context, req models.StartTripRequest) (*models.Trip, error)
	FinalizeTrip(ctx context.Context, tripID int) (*models.Trip, error)
	TripStats(ctx context.Context, tripID int) (*models.TripStats, error)

	RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error)
	AlertsByTrip(ctx context.Context, tripID int) ([]models.Alert, error)

	ListVehicles(ctx context.Context, skip, limit int) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error)
}

// LiveBroadcaster pushes refreshed view models to connected dashboards.
// Implemented by the websocket hub; the refresh worker only needs this.
type LiveBroadcaster interface {
	BroadcastDashboard(snapshot models.DashboardSnapshot, sequence uint64)
	BroadcastAlertFeed(feed models.AlertFeed, sequence uint64)
}
