// Package geo provides coordinate types and the flat degree-space distance
// used for airport proximity bucketing.
package geo

import "math"

// Coordinates represents a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DegreeDistance returns the Euclidean distance between two points in
// degree-space. This is deliberately not a geodesic distance: at the scale
// of "which airport is this aircraft near" a flat approximation is enough,
// and it keeps the classifier cheap and dependency-free.
func DegreeDistance(a, b Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// IsValid returns true if the coordinates are within valid ranges.
// Latitude must be between -90 and 90, longitude between -180 and 180.
func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// IsZero returns true if both coordinates are zero (likely unset).
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// BoundingBox is a four-value geographic filter limiting which state
// vectors are requested from the flight-state provider.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(c Coordinates) bool {
	return c.Lat >= b.LatMin && c.Lat <= b.LatMax &&
		c.Lon >= b.LonMin && c.Lon <= b.LonMax
}
