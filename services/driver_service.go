package services

import (
	"context"
	"vigia/interfaces"
	"vigia/models"
	"vigia/utils"

	"github.com/sirupsen/logrus"
)

// DriverService is a thin pass-through to the backend's driver CRUD,
// plus the drivers-table join with active trips.
type DriverService struct {
	api   interfaces.FleetAPI
	trips *TripService
}

func NewDriverService(api interfaces.FleetAPI, trips *TripService) *DriverService {
	return &DriverService{
		api:   api,
		trips: trips,
	}
}

func (ds *DriverService) List(ctx context.Context, limit int) ([]models.Driver, error) {
	drivers, err := ds.api.ListDrivers(ctx, limit)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return drivers, nil
}

func (ds *DriverService) Get(ctx context.Context, driverID int) (*models.Driver, error) {
	driver, err := ds.api.GetDriver(ctx, driverID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return driver, nil
}

func (ds *DriverService) Create(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewBadRequestError(validationErrors[0].Message)
	}

	driver, err := ds.api.CreateDriver(ctx, req)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	logrus.Infof("Driver %d registered", driver.ID)
	return driver, nil
}

func (ds *DriverService) Update(ctx context.Context, driverID int, req models.UpdateDriverRequest) (*models.Driver, error) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewBadRequestError(validationErrors[0].Message)
	}

	driver, err := ds.api.UpdateDriver(ctx, driverID, req)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return driver, nil
}

func (ds *DriverService) Delete(ctx context.Context, driverID int) error {
	if err := ds.api.DeleteDriver(ctx, driverID); err != nil {
		return wrapUpstream(err)
	}
	logrus.Infof("Driver %d deleted", driverID)
	return nil
}

// Rows builds the drivers table: every driver with its active trip
// resolved. The whole load fails only when the driver list itself does;
// per-driver trip lookups degrade row by row.
func (ds *DriverService) Rows(ctx context.Context, limit int) ([]models.DriverRow, error) {
	drivers, err := ds.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	active := ds.trips.ResolveActiveTrips(ctx, drivers)

	rows := make([]models.DriverRow, 0, len(drivers))
	for _, driver := range drivers {
		rows = append(rows, models.DriverRow{
			Driver:     driver,
			ActiveTrip: active[driver.ID],
		})
	}
	return rows, nil
}
