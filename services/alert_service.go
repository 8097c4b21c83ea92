package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"vigia/interfaces"
	"vigia/models"
	"vigia/utils"
)

// Feed load sizes, matching the notifications page: a deep alert window
// so older alerts with coordinates still reach the map.
const (
	feedAlertLimit  = 500
	feedDriverLimit = 100
	feedTripLimit   = 100
)

// AlertService is the aggregation engine behind the alert map and the
// notifications feed. It joins alerts to trips and drivers, resolves
// geolocation, applies the feed filters, and computes summary counters.
// Dismissals are session-scoped and in-memory only; they never reach the
// backend and never survive a restart.
type AlertService struct {
	api interfaces.FleetAPI

	mu        sync.RWMutex
	dismissed map[int]struct{}

	// now is injectable so date-window tests can pin the clock.
	now func() time.Time
}

func NewAlertService(api interfaces.FleetAPI) *AlertService {
	return &AlertService{
		api:       api,
		dismissed: make(map[int]struct{}),
		now:       time.Now,
	}
}

// LoadFeed fetches the alert window plus the trip and driver reference
// lists. The aggregate fails as a whole; partial degradation is reserved
// for the per-driver trip lookups.
func (as *AlertService) LoadFeed(ctx context.Context) ([]models.Alert, []models.Trip, []models.Driver, error) {
	alerts, err := as.api.RecentAlerts(ctx, feedAlertLimit)
	if err != nil {
		return nil, nil, nil, wrapUpstream(err)
	}
	drivers, err := as.api.ListDrivers(ctx, feedDriverLimit)
	if err != nil {
		return nil, nil, nil, wrapUpstream(err)
	}
	trips, err := as.api.ListTrips(ctx, 0, feedTripLimit, nil)
	if err != nil {
		return nil, nil, nil, wrapUpstream(err)
	}
	return alerts, trips, drivers, nil
}

// Feed builds the filtered notifications view model. Statistics always
// cover the full undismissed set, so dismissing or filtering never moves
// the header counters.
func (as *AlertService) Feed(ctx context.Context, filter models.AlertFilter) (*models.AlertFeed, error) {
	alerts, trips, drivers, err := as.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AlertFeed{
		Items:      buildFeedItems(as.FilterAlerts(alerts, filter), trips, drivers),
		Statistics: as.ComputeStatistics(alerts),
		Types:      UniqueAlertTypes(alerts),
	}, nil
}

// buildFeedItems decorates filtered alerts with their classification and
// the joined driver/vehicle names. A failed join degrades to the
// placeholder; only coordinates ever drop an alert, and only from the map.
func buildFeedItems(alerts []models.Alert, trips []models.Trip, drivers []models.Driver) []models.AlertFeedItem {
	tripsByID := make(map[int]models.Trip, len(trips))
	for _, t := range trips {
		tripsByID[t.ID] = t
	}
	driversByID := make(map[int]models.Driver, len(drivers))
	for _, d := range drivers {
		driversByID[d.ID] = d
	}

	items := make([]models.AlertFeedItem, 0, len(alerts))
	for _, alert := range alerts {
		item := models.AlertFeedItem{
			Alert:   alert,
			Type:    models.ResolveAlertType(alert.Type),
			Driver:  models.NoDriverPlaceholder,
			Vehicle: models.NoVehiclePlaceholder,
		}

		if trip, ok := tripsByID[alert.TripID]; ok {
			if driver, ok := driversByID[trip.DriverID]; ok {
				item.Driver = driver.Name
			}
			if trip.Vehicle != nil {
				if trip.Vehicle.Name != "" {
					item.Vehicle = trip.Vehicle.Name
				} else if trip.Vehicle.Plate != nil {
					item.Vehicle = *trip.Vehicle.Plate
				}
			}
		}

		items = append(items, item)
	}
	return items
}

// Map builds the heat-map view model from the filtered alert set.
func (as *AlertService) Map(ctx context.Context, filter models.AlertFilter) (*models.AlertMap, error) {
	alerts, trips, drivers, err := as.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}

	filtered := as.FilterAlerts(alerts, filter)
	points, withoutCoords := BuildAlertPoints(filtered, trips, drivers)

	coords := make([]models.LatLng, 0, len(points))
	for _, p := range points {
		coords = append(coords, models.LatLng{Lat: p.Lat, Lng: p.Lng})
	}

	return &models.AlertMap{
		Points:        points,
		WithCoords:    len(points),
		WithoutCoords: withoutCoords,
		Bounds:        utils.BoundsOf(coords),
	}, nil
}

// BuildAlertPoints resolves each alert to a plottable point. Alerts with
// no resolvable coordinates are skipped and counted; they are excluded
// from the map only, never from the feed. Output order is insignificant.
func BuildAlertPoints(alerts []models.Alert, trips []models.Trip, drivers []models.Driver) ([]models.AlertPoint, int) {
	tripsByID := make(map[int]models.Trip, len(trips))
	for _, t := range trips {
		tripsByID[t.ID] = t
	}
	driversByID := make(map[int]models.Driver, len(drivers))
	for _, d := range drivers {
		driversByID[d.ID] = d
	}

	points := make([]models.AlertPoint, 0, len(alerts))
	withoutCoords := 0

	for _, alert := range alerts {
		pos := models.ResolveCoordinates(alert, trips)
		if pos == nil {
			withoutCoords++
			continue
		}

		var driver *models.Driver
		if trip, ok := tripsByID[alert.TripID]; ok {
			if d, ok := driversByID[trip.DriverID]; ok {
				driverCopy := d
				driver = &driverCopy
			}
		}

		points = append(points, models.AlertPoint{
			Lat:    pos.Lat,
			Lng:    pos.Lng,
			Alert:  alert,
			Driver: driver,
			Color:  models.ResolveAlertType(alert.Type).Color,
		})
	}

	return points, withoutCoords
}

// FilterAlerts applies the dismissal, type, priority, and date-range
// filters (commutative predicates, intersection semantics) and returns
// the survivors sorted by timestamp descending.
func (as *AlertService) FilterAlerts(alerts []models.Alert, filter models.AlertFilter) []models.Alert {
	midnight := as.localMidnight()

	filtered := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if as.IsDismissed(alert.ID) {
			continue
		}
		if !matchesType(alert, filter.Type) {
			continue
		}
		if !matchesPriority(alert, filter.Priority) {
			continue
		}
		if !matchesDateRange(alert, filter, midnight) {
			continue
		}
		filtered = append(filtered, alert)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Time.After(filtered[j].Timestamp.Time)
	})
	return filtered
}

func matchesType(alert models.Alert, filterType string) bool {
	if filterType == "" || filterType == "all" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(alert.Type), strings.TrimSpace(filterType))
}

func matchesPriority(alert models.Alert, filterPriority string) bool {
	switch filterPriority {
	case "", models.PriorityFilterAll:
		return true
	case models.PriorityFilterCritical:
		return models.ResolveAlertType(alert.Type).Priority == models.PriorityCritical
	case models.PriorityFilterWarning:
		return models.ResolveAlertType(alert.Type).Priority == models.PriorityWarning
	case models.PriorityFilterInfo:
		return models.ResolveAlertType(alert.Type).Priority == models.PriorityInfo
	default:
		return true
	}
}

// matchesDateRange evaluates the date window. An alert with an
// unparseable timestamp never matches a bounded window; it only passes
// "all" and an unbounded custom range.
func matchesDateRange(alert models.Alert, filter models.AlertFilter, midnight time.Time) bool {
	switch filter.DateRange {
	case "", models.DateFilterAll:
		return true
	case models.DateFilterToday:
		return alert.Timestamp.AtOrAfter(midnight)
	case models.DateFilterWeek:
		return alert.Timestamp.AtOrAfter(midnight.AddDate(0, 0, -7))
	case models.DateFilterMonth:
		return alert.Timestamp.AtOrAfter(midnight.AddDate(0, -1, 0))
	case models.DateFilterCustom:
		if filter.StartDate != "" {
			start, err := time.ParseInLocation("2006-01-02", filter.StartDate, midnight.Location())
			if err != nil || !alert.Timestamp.AtOrAfter(start) {
				return false
			}
		}
		if filter.EndDate != "" {
			end, err := time.ParseInLocation("2006-01-02", filter.EndDate, midnight.Location())
			if err != nil {
				return false
			}
			// Inclusive end bound: compare at 23:59:59.999 of that day.
			end = end.Add(24*time.Hour - time.Millisecond)
			if !alert.Timestamp.Valid || alert.Timestamp.Time.After(end) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// ComputeStatistics summarizes the full alert set. Always computed over
// the undismissed list: the header counters report what happened, not
// what the operator chose to hide.
func (as *AlertService) ComputeStatistics(alerts []models.Alert) models.AlertStatistics {
	midnight := as.localMidnight()

	stats := models.AlertStatistics{
		Total:  len(alerts),
		ByType: make(map[string]int),
	}

	for _, alert := range alerts {
		today := alert.Timestamp.AtOrAfter(midnight)
		critical := models.ResolveAlertType(alert.Type).Priority == models.PriorityCritical

		if today {
			stats.Today++
		}
		if critical {
			stats.Critical++
		}
		if today && critical {
			stats.TodayCritical++
		}

		key := alert.Type
		if key == "" {
			key = "OTROS"
		}
		stats.ByType[key]++
	}

	return stats
}

// Dismiss hides an alert from subsequent feed reads. Idempotent.
func (as *AlertService) Dismiss(alertID int) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.dismissed[alertID] = struct{}{}
}

func (as *AlertService) IsDismissed(alertID int) bool {
	as.mu.RLock()
	defer as.mu.RUnlock()
	_, ok := as.dismissed[alertID]
	return ok
}

// DismissedCount reports how many alerts the session has hidden.
func (as *AlertService) DismissedCount() int {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return len(as.dismissed)
}

// UniqueAlertTypes lists the distinct upper-cased codes present, for the
// type filter menu. Empty codes are skipped.
func UniqueAlertTypes(alerts []models.Alert) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, alert := range alerts {
		code := strings.ToUpper(strings.TrimSpace(alert.Type))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		types = append(types, code)
	}
	sort.Strings(types)
	return types
}

func (as *AlertService) localMidnight() time.Time {
	now := as.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
