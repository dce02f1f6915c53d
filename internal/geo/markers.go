// Package geo prepares service coordinates for the map view. Members at the
// same address would otherwise render as one stacked pin, and exact
// positions are only shared after booking, so near-identical coordinates are
// spread along a small circle and flagged as approximate.
package geo

import (
	"math"

	"timebank/internal/domain"
)

const (
	// duplicateTolerance is roughly 10 meters in degrees.
	duplicateTolerance = 0.0001
	// offsetRadius is roughly 200 meters in degrees.
	offsetRadius = 0.002
	// offsetSlots spreads duplicates over eighths of a full circle.
	offsetSlots = 8
)

// Marker is a service placed on the map. Offset markers carry perturbed
// coordinates so the UI can annotate them as approximate locations.
type Marker struct {
	Service domain.Service
	Lat     float64
	Lng     float64
	Offset  bool
}

// SpreadMarkers drops services without coordinates and displaces every
// duplicate after the first in its group onto a fixed-radius circle, at an
// angle determined by how many duplicates came before it. Approximate circle
// packing is enough here; there is no collision-resolution iteration.
func SpreadMarkers(services []domain.Service) []Marker {
	markers := make([]Marker, 0, len(services))

	for _, s := range services {
		if !s.HasLocation() {
			continue
		}

		prior := 0
		for _, m := range markers {
			if math.Abs(m.Service.Latitude-s.Latitude) < duplicateTolerance &&
				math.Abs(m.Service.Longitude-s.Longitude) < duplicateTolerance {
				prior++
			}
		}

		m := Marker{Service: s, Lat: s.Latitude, Lng: s.Longitude}
		if prior > 0 {
			angle := 2 * math.Pi * float64(prior-1) / offsetSlots
			m.Lat += offsetRadius * math.Cos(angle)
			m.Lng += offsetRadius * math.Sin(angle)
			m.Offset = true
		}
		markers = append(markers, m)
	}
	return markers
}

// Center is the arithmetic mean of the (possibly displaced) marker
// coordinates. It must be recomputed whenever the input set changes.
func Center(markers []Marker) (lat, lng float64) {
	if len(markers) == 0 {
		return 0, 0
	}
	for _, m := range markers {
		lat += m.Lat
		lng += m.Lng
	}
	n := float64(len(markers))
	return lat / n, lng / n
}
