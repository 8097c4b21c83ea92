package models

// Driver mirrors the upstream /conductores/ resource.
type Driver struct {
	ID               int     `json:"id_conductor"`
	Name             string  `json:"nombre"`
	MedicalCondition *string `json:"condicion_medica,omitempty"`
	RiskSchedule     *string `json:"horario_riesgo,omitempty"`
	Active           bool    `json:"activo"`
}

// DriverRow is a driver joined with its active trip, if any, for the
// drivers table view. ActiveTrip is nil when the driver is not on a trip.
type DriverRow struct {
	Driver     Driver `json:"conductor"`
	ActiveTrip *Trip  `json:"viaje_activo,omitempty"`
}
