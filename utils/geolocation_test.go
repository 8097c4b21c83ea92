package utils

import (
	"testing"
	"vigia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(-1.83, -78.18))
	assert.True(t, IsValidCoordinate(90, 180))
	assert.True(t, IsValidCoordinate(-90, -180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
}

func TestBoundsOf(t *testing.T) {
	bounds := BoundsOf([]models.LatLng{
		{Lat: -1.0, Lng: -78.0},
		{Lat: -3.0, Lng: -80.0},
	})
	require.NotNil(t, bounds)

	assert.Equal(t, models.LatLng{Lat: -1.0, Lng: -78.0}, bounds.NorthEast)
	assert.Equal(t, models.LatLng{Lat: -3.0, Lng: -80.0}, bounds.SouthWest)
	assert.Equal(t, models.LatLng{Lat: -2.0, Lng: -79.0}, bounds.Center)
}

func TestBoundsOf_SkipsOutOfRangePairs(t *testing.T) {
	bounds := BoundsOf([]models.LatLng{
		{Lat: -1.0, Lng: -78.0},
		{Lat: 999, Lng: 999},
	})
	require.NotNil(t, bounds)
	assert.Equal(t, models.LatLng{Lat: -1.0, Lng: -78.0}, bounds.Center)
}

func TestBoundsOf_Empty(t *testing.T) {
	assert.Nil(t, BoundsOf(nil))
	assert.Nil(t, BoundsOf([]models.LatLng{{Lat: 999, Lng: 0}}))
}
