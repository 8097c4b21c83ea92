package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(v float64) Coord {
	return Coord{Value: v, Valid: true}
}

func TestCoord_DecodesNumbersAndNumericStrings(t *testing.T) {
	var alert Alert
	err := json.Unmarshal([]byte(`{"id_alerta":1,"latitud":-1.83,"longitud":"-78.18"}`), &alert)
	require.NoError(t, err)

	assert.True(t, alert.Lat.Valid)
	assert.Equal(t, -1.83, alert.Lat.Value)
	assert.True(t, alert.Lng.Valid)
	assert.Equal(t, -78.18, alert.Lng.Value)
}

func TestCoord_GarbageDecodesAsAbsent(t *testing.T) {
	var alert Alert
	err := json.Unmarshal([]byte(`{"id_alerta":1,"latitud":"n/a","longitud":null}`), &alert)
	require.NoError(t, err)

	assert.False(t, alert.Lat.Valid)
	assert.False(t, alert.Lng.Valid)
}

func TestTimestamp_AcceptsMultipleLayouts(t *testing.T) {
	cases := []string{
		`"2025-03-14T08:30:00Z"`,
		`"2025-03-14T08:30:00.123Z"`,
		`"2025-03-14T08:30:00"`,
		`"2025-03-14 08:30:00"`,
		`"2025-03-14"`,
	}
	for _, raw := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts))
		assert.True(t, ts.Valid, "layout %s", raw)
		assert.Equal(t, 2025, ts.Time.Year(), "layout %s", raw)
	}
}

func TestTimestamp_UnparseableIsInvalidNotError(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"hace un rato"`), &ts))
	assert.False(t, ts.Valid)

	// Invalid timestamps never match bounded windows.
	assert.False(t, ts.AtOrAfter(time.Time{}))
	assert.False(t, ts.After(time.Time{}))
}

func TestAlert_OwnCoordinatesAliasOrder(t *testing.T) {
	// Primary alias wins over the short one.
	alert := Alert{Lat: coord(-1.0), LatAlt: coord(-9.9), Lng: coord(-78.0)}
	pos := alert.OwnCoordinates()
	require.NotNil(t, pos)
	assert.Equal(t, -1.0, pos.Lat)
	assert.Equal(t, -78.0, pos.Lng)

	// Each axis resolves through its own chain.
	alert = Alert{LatLong: coord(-2.0), LngAlt: coord(-79.0)}
	pos = alert.OwnCoordinates()
	require.NotNil(t, pos)
	assert.Equal(t, -2.0, pos.Lat)
	assert.Equal(t, -79.0, pos.Lng)
}

func TestAlert_OwnCoordinatesRequiresBothAxes(t *testing.T) {
	alert := Alert{Lat: coord(-1.0)}
	assert.Nil(t, alert.OwnCoordinates())
}

func TestTrip_CoordinatesChain(t *testing.T) {
	// Last-known beats origin beats bare aliases.
	trip := Trip{
		CurrentLat: coord(-1.1), CurrentLng: coord(-78.1),
		OriginLat: coord(-2.2), OriginLng: coord(-79.2),
		Lat: coord(-3.3), Lng: coord(-80.3),
	}
	pos := trip.Coordinates()
	require.NotNil(t, pos)
	assert.Equal(t, LatLng{Lat: -1.1, Lng: -78.1}, *pos)

	// A missing axis falls through independently.
	trip = Trip{CurrentLat: coord(-1.1), OriginLng: coord(-79.2)}
	pos = trip.Coordinates()
	require.NotNil(t, pos)
	assert.Equal(t, LatLng{Lat: -1.1, Lng: -79.2}, *pos)
}

func TestResolveCoordinates_AlertWinsOverTrip(t *testing.T) {
	alert := Alert{TripID: 10, Lat: coord(-1.0), Lng: coord(-78.0)}
	trips := []Trip{{ID: 10, OriginLat: coord(-9.0), OriginLng: coord(-9.0)}}

	pos := ResolveCoordinates(alert, trips)
	require.NotNil(t, pos)
	assert.Equal(t, LatLng{Lat: -1.0, Lng: -78.0}, *pos)
}

func TestResolveCoordinates_FallsBackToTrip(t *testing.T) {
	alert := Alert{TripID: 10}
	trips := []Trip{{ID: 10, OriginLat: coord(-1.83), OriginLng: coord(-78.18)}}

	pos := ResolveCoordinates(alert, trips)
	require.NotNil(t, pos)
	assert.Equal(t, LatLng{Lat: -1.83, Lng: -78.18}, *pos)
}

func TestResolveCoordinates_NoPairAnywhere(t *testing.T) {
	alert := Alert{TripID: 10}
	trips := []Trip{{ID: 10}}
	assert.Nil(t, ResolveCoordinates(alert, trips))

	// Unknown trip is the same outcome.
	alert = Alert{TripID: 99}
	assert.Nil(t, ResolveCoordinates(alert, trips))
}

func TestTrip_IsActive(t *testing.T) {
	assert.True(t, Trip{}.IsActive())

	unparsed := &Timestamp{}
	assert.True(t, Trip{EndTime: unparsed}.IsActive())

	ended := &Timestamp{Time: time.Now(), Valid: true}
	assert.False(t, Trip{EndTime: ended}.IsActive())
}
