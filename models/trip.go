package models

import "time"

// Trip mirrors the upstream /viajes/ resource. A trip is active while
// EndTime is null. Coordinate fields cover every alias observed across
// device firmware versions; resolution order matters (see Coordinates).
type Trip struct {
	ID        int        `json:"id_viaje"`
	DriverID  int        `json:"id_conductor"`
	VehicleID *int       `json:"id_vehiculo,omitempty"`
	Vehicle   *Vehicle   `json:"vehiculo,omitempty"`
	StartTime Timestamp  `json:"fecha_inicio"`
	EndTime   *Timestamp `json:"fecha_fin"`

	// Last-known position aliases
	CurrentLat Coord `json:"latitud_actual,omitempty"`
	CurrentLng Coord `json:"longitud_actual,omitempty"`

	// Origin position aliases
	OriginLat Coord `json:"lat_origen,omitempty"`
	OriginLng Coord `json:"lng_origen,omitempty"`

	// Bare aliases used by older firmware
	Lat    Coord `json:"latitud,omitempty"`
	LatAlt Coord `json:"lat,omitempty"`
	Lng    Coord `json:"longitud,omitempty"`
	LngAlt Coord `json:"lng,omitempty"`
}

// IsActive reports whether the trip is in progress. Null end timestamp is
// the sole activity invariant.
func (t Trip) IsActive() bool {
	return t.EndTime == nil || !t.EndTime.Valid
}

// Coordinates resolves the trip's best-known position: last-known first,
// then origin, then the bare legacy aliases. Each axis resolves through
// its own chain; both must resolve for a pair.
func (t Trip) Coordinates() *LatLng {
	lat, latOK := firstValid(t.CurrentLat, t.OriginLat, t.Lat, t.LatAlt)
	lng, lngOK := firstValid(t.CurrentLng, t.OriginLng, t.Lng, t.LngAlt)
	if !latOK || !lngOK {
		return nil
	}
	return &LatLng{Lat: lat, Lng: lng}
}

// TripStats mirrors the /viajes/{id}/estadisticas payload. The backend
// computes these; the dashboard only displays them.
type TripStats struct {
	TripID        int      `json:"id_viaje"`
	TotalAlerts   int      `json:"total_alertas"`
	Duration      *float64 `json:"duracion_minutos,omitempty"`
	DistanceKm    *float64 `json:"distancia_km,omitempty"`
	AvgDrowsiness *float64 `json:"somnolencia_promedio,omitempty"`

	AlertsByType map[string]int `json:"alertas_por_tipo,omitempty"`
}

// FinalizeTripRequest is the body for PUT /viajes/{id}/finalizar.
type FinalizeTripRequest struct {
	EndTime string `json:"fecha_fin"`
}

// NowEndTime formats the finalize timestamp the way the SPA did:
// current instant, ISO-8601, UTC.
func NowEndTime() string {
	return time.Now().UTC().Format(time.RFC3339)
}
