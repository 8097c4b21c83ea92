package models

// Alert mirrors the upstream /alertas/ resource. Type codes are free-form
// strings with inconsistent casing and language across device firmware;
// ResolveAlertType is the single classification authority.
type Alert struct {
	ID              int       `json:"id_alerta"`
	TripID          int       `json:"id_viaje"`
	Type            string    `json:"tipo_alerta"`
	DrowsinessLevel *string   `json:"nivel_somnolencia,omitempty"`
	Timestamp       Timestamp `json:"timestamp"`

	// Coordinate aliases; many alerts carry none and fall back to their trip.
	Lat     Coord `json:"latitud,omitempty"`
	LatAlt  Coord `json:"lat,omitempty"`
	LatLong Coord `json:"latitude,omitempty"`
	Lng     Coord `json:"longitud,omitempty"`
	LngAlt  Coord `json:"lng,omitempty"`
	LngLong Coord `json:"longitude,omitempty"`
}

// OwnCoordinates resolves the alert's own GPS pair across the field
// aliases, without consulting trip data.
func (a Alert) OwnCoordinates() *LatLng {
	lat, latOK := firstValid(a.Lat, a.LatAlt, a.LatLong)
	lng, lngOK := firstValid(a.Lng, a.LngAlt, a.LngLong)
	if !latOK || !lngOK {
		return nil
	}
	return &LatLng{Lat: lat, Lng: lng}
}

// ResolveCoordinates is the full fallback chain: the alert's own pair
// wins; otherwise the owning trip's best-known position. Returns nil when
// no numeric pair exists anywhere; callers exclude such alerts from the
// map and count them, never plot a default point.
func ResolveCoordinates(alert Alert, trips []Trip) *LatLng {
	if pos := alert.OwnCoordinates(); pos != nil {
		return pos
	}
	for _, trip := range trips {
		if trip.ID == alert.TripID {
			return trip.Coordinates()
		}
	}
	return nil
}

// AlertPoint is a plottable alert: resolved position, classification
// color, and the owning driver when the trip join finds one.
type AlertPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Alert  Alert   `json:"alerta"`
	Driver *Driver `json:"conductor,omitempty"`
	Color  string  `json:"color"`
}
