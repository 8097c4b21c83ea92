package models

// Vehicle mirrors the upstream /vehiculos/ resource. DeviceToken is
// generated by the backend on creation and identifies the in-cab device.
type Vehicle struct {
	ID          int     `json:"id_vehiculo"`
	Name        string  `json:"nombre"`
	Plate       *string `json:"placa,omitempty"`
	DeviceToken string  `json:"token_dispositivo,omitempty"`
	Active      bool    `json:"activo"`
}
