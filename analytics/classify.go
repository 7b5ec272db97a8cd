package analytics

import (
	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/pkg/geo"
)

// maxAirportDistance is the classification threshold in degrees. A position
// farther than this from every registered airport is left uncounted.
const maxAirportDistance = 1.0

// NearestAirport returns the registry airport closest to the position in
// flat degree-space, provided that distance is strictly under the
// threshold. The first strict minimum in registry order wins: a later
// airport at exactly the same distance does not overwrite the match.
func NearestAirport(c geo.Coordinates, airports []config.Airport) (string, bool) {
	minDist := maxAirportDistance
	nearest := ""
	found := false

	for _, a := range airports {
		if dist := geo.DegreeDistance(c, a.Coord); dist < minDist {
			minDist = dist
			nearest = a.Code
			found = true
		}
	}

	return nearest, found
}
