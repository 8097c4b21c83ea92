package services

import (
	"context"
	"vigia/interfaces"
	"vigia/models"
	"vigia/utils"

	"github.com/sirupsen/logrus"
)

// VehicleService covers the two vehicle operations the dashboard needs:
// listing and registration. Vehicles are never updated or deleted here.
type VehicleService struct {
	api interfaces.FleetAPI
}

func NewVehicleService(api interfaces.FleetAPI) *VehicleService {
	return &VehicleService{api: api}
}

func (vs *VehicleService) List(ctx context.Context, skip, limit int) ([]models.Vehicle, error) {
	vehicles, err := vs.api.ListVehicles(ctx, skip, limit)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return vehicles, nil
}

// Create registers a vehicle; the backend answers with the generated
// device token the in-cab unit will authenticate with.
func (vs *VehicleService) Create(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewBadRequestError(validationErrors[0].Message)
	}

	vehicle, err := vs.api.CreateVehicle(ctx, req)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	logrus.Infof("Vehicle %d registered", vehicle.ID)
	return vehicle, nil
}
