package models

import "time"

// DashboardSnapshot is the landing-page aggregate, recomputed on every
// poll cycle. Never cached beyond the last successful computation.
type DashboardSnapshot struct {
	TotalDrivers   int `json:"total_conductores"`
	ActiveDrivers  int `json:"conductores_activos"`
	TotalVehicles  int `json:"total_vehiculos"`
	ActiveVehicles int `json:"vehiculos_activos"`
	TotalTrips     int `json:"total_viajes"`
	ActiveTrips    int `json:"viajes_activos"`
	CompletedTrips int `json:"viajes_completados"`
	TotalAlerts    int `json:"total_alertas"`
	TodayAlerts    int `json:"alertas_hoy"`

	AlertsByType map[string]int `json:"alertas_por_tipo"`
	RecentAlerts []Alert        `json:"alertas_recientes"`

	Drivers []Driver  `json:"conductores"`
	Trips   []Trip    `json:"viajes_en_curso"`
	TakenAt time.Time `json:"generado_en"`
}

// AlertStatistics summarizes the full (undismissed) alert set for the
// notifications header cards.
type AlertStatistics struct {
	Total         int            `json:"total"`
	Today         int            `json:"hoy"`
	Critical      int            `json:"criticas"`
	TodayCritical int            `json:"criticas_hoy"`
	ByType        map[string]int `json:"por_tipo"`
}

// Date-range filter modes.
const (
	DateFilterAll    = "all"
	DateFilterToday  = "today"
	DateFilterWeek   = "week"
	DateFilterMonth  = "month"
	DateFilterCustom = "custom"
)

// Priority filter modes.
const (
	PriorityFilterAll      = "all"
	PriorityFilterCritical = "critical"
	PriorityFilterWarning  = "warning"
	PriorityFilterInfo     = "info"
)

// AlertFilter is the set of orthogonal feed filters. Zero value passes
// everything. StartDate/EndDate are "2006-01-02" and only consulted in
// custom mode; either bound may stay open.
type AlertFilter struct {
	Type      string `json:"tipo" form:"tipo"`
	Priority  string `json:"prioridad" form:"prioridad"`
	DateRange string `json:"periodo" form:"periodo"`
	StartDate string `json:"desde" form:"desde"`
	EndDate   string `json:"hasta" form:"hasta"`
}

// Placeholders shown when the alert→trip→driver/vehicle join finds
// nothing. Unresolved lookups never drop an alert from the feed.
const (
	NoDriverPlaceholder  = "Sin conductor"
	NoVehiclePlaceholder = "Sin vehículo"
)

// AlertFeedItem is one feed row: the alert, its canonical
// classification, and the joined driver/vehicle display names.
type AlertFeedItem struct {
	Alert   Alert         `json:"alerta"`
	Type    AlertTypeInfo `json:"tipo"`
	Driver  string        `json:"conductor"`
	Vehicle string        `json:"vehiculo"`
}

// AlertFeed is the aggregated notifications view model.
type AlertFeed struct {
	Items      []AlertFeedItem `json:"alertas"`
	Statistics AlertStatistics `json:"estadisticas"`
	Types      []string        `json:"tipos"`
}

// AlertMap is the heat-map view model: plottable points plus the
// with/without-coordinates diagnostic split.
type AlertMap struct {
	Points        []AlertPoint `json:"puntos"`
	WithCoords    int          `json:"con_coordenadas"`
	WithoutCoords int          `json:"sin_coordenadas"`
	Bounds        *MapBounds   `json:"limites,omitempty"`
}

// MapBounds frames the initial map viewport around the plotted points.
type MapBounds struct {
	NorthEast LatLng `json:"noreste"`
	SouthWest LatLng `json:"suroeste"`
	Center    LatLng `json:"centro"`
}
