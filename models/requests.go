package models

// CreateDriverRequest is the payload for registering a driver.
type CreateDriverRequest struct {
	Name             string  `json:"nombre" binding:"required,min=1,max=120"`
	MedicalCondition *string `json:"condicion_medica,omitempty"`
	RiskSchedule     *string `json:"horario_riesgo,omitempty"`
	Active           *bool   `json:"activo,omitempty"`
}

// UpdateDriverRequest carries only the fields the caller wants changed;
// nil fields are omitted from the upstream PUT body.
type UpdateDriverRequest struct {
	Name             *string `json:"nombre,omitempty" binding:"omitempty,min=1,max=120"`
	MedicalCondition *string `json:"condicion_medica,omitempty"`
	RiskSchedule     *string `json:"horario_riesgo,omitempty"`
	Active           *bool   `json:"activo,omitempty"`
}

// CreateVehicleRequest is the payload for registering a vehicle. The
// backend answers with the generated device token.
type CreateVehicleRequest struct {
	Name  string  `json:"nombre" binding:"required,min=1,max=120"`
	Plate *string `json:"placa,omitempty" binding:"omitempty,max=20"`
}

// StartTripRequest is the payload for POST /viajes/.
type StartTripRequest struct {
	DriverID  int  `json:"id_conductor" binding:"required,min=1"`
	VehicleID *int `json:"id_vehiculo,omitempty" binding:"omitempty,min=1"`
}
