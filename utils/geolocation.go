package utils

import (
	"vigia/models"
)

// IsValidCoordinate checks if latitude and longitude values are valid
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundsOf frames a set of plotted points: north-east and south-west
// corners plus the arithmetic center, for the map's initial viewport.
// Out-of-range pairs are ignored; nil when nothing plottable remains.
func BoundsOf(points []models.LatLng) *models.MapBounds {
	var (
		found             bool
		minLat, maxLat    float64
		minLng, maxLng    float64
		latSum, lngSum, n float64
	)

	for _, p := range points {
		if !IsValidCoordinate(p.Lat, p.Lng) {
			continue
		}
		if !found {
			minLat, maxLat = p.Lat, p.Lat
			minLng, maxLng = p.Lng, p.Lng
			found = true
		} else {
			if p.Lat < minLat {
				minLat = p.Lat
			}
			if p.Lat > maxLat {
				maxLat = p.Lat
			}
			if p.Lng < minLng {
				minLng = p.Lng
			}
			if p.Lng > maxLng {
				maxLng = p.Lng
			}
		}
		latSum += p.Lat
		lngSum += p.Lng
		n++
	}

	if !found {
		return nil
	}

	return &models.MapBounds{
		NorthEast: models.LatLng{Lat: maxLat, Lng: maxLng},
		SouthWest: models.LatLng{Lat: minLat, Lng: minLng},
		Center:    models.LatLng{Lat: latSum / n, Lng: lngSum / n},
	}
}
