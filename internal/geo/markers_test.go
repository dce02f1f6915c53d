package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"timebank/internal/domain"
)

func TestSpreadMarkers_DisplacesDuplicates(t *testing.T) {
	services := []domain.Service{
		{ID: 1, Latitude: 40.0000, Longitude: -74.0000},
		{ID: 2, Latitude: 40.00005, Longitude: -74.00005}, // within tolerance of #1
		{ID: 3, Latitude: 41.5, Longitude: -70.2},
	}

	markers := SpreadMarkers(services)
	assert.Len(t, markers, 3)

	// first occurrence stays put
	assert.False(t, markers[0].Offset)
	assert.Equal(t, 40.0000, markers[0].Lat)
	assert.Equal(t, -74.0000, markers[0].Lng)

	// second is pushed onto the circle at the first slot (angle 0)
	assert.True(t, markers[1].Offset)
	assert.InDelta(t, 40.00005+0.002, markers[1].Lat, 1e-9)
	assert.InDelta(t, -74.00005, markers[1].Lng, 1e-9)

	// far-away service untouched
	assert.False(t, markers[2].Offset)
	assert.Equal(t, 41.5, markers[2].Lat)
	assert.Equal(t, -70.2, markers[2].Lng)
}

func TestSpreadMarkers_SlotsAdvancePerDuplicate(t *testing.T) {
	services := []domain.Service{
		{ID: 1, Latitude: 40, Longitude: -74},
		{ID: 2, Latitude: 40, Longitude: -74},
		{ID: 3, Latitude: 40, Longitude: -74},
	}

	markers := SpreadMarkers(services)

	// third duplicate lands an eighth of a turn past the second
	assert.InDelta(t, 40+0.002*math.Cos(math.Pi/4), markers[2].Lat, 1e-9)
	assert.InDelta(t, -74+0.002*math.Sin(math.Pi/4), markers[2].Lng, 1e-9)

	// all displaced markers keep the fixed radius from their origin
	for _, m := range markers[1:] {
		dist := math.Hypot(m.Lat-40, m.Lng+74)
		assert.InDelta(t, 0.002, dist, 1e-9)
		assert.True(t, m.Offset)
	}
}

func TestSpreadMarkers_DropsUnsetCoordinates(t *testing.T) {
	services := []domain.Service{
		{ID: 1, Latitude: 0, Longitude: 0},
		{ID: 2, Latitude: 40, Longitude: -74},
		{ID: 3, Latitude: 0, Longitude: -74},
	}

	markers := SpreadMarkers(services)
	assert.Len(t, markers, 1)
	assert.Equal(t, int64(2), markers[0].Service.ID)
}

func TestCenter_MeanOfDisplacedCoordinates(t *testing.T) {
	markers := []Marker{
		{Lat: 40, Lng: -74},
		{Lat: 42, Lng: -70},
	}

	lat, lng := Center(markers)
	assert.InDelta(t, 41, lat, 1e-9)
	assert.InDelta(t, -72, lng, 1e-9)
}

func TestCenter_Empty(t *testing.T) {
	lat, lng := Center(nil)
	assert.Zero(t, lat)
	assert.Zero(t, lng)
}
