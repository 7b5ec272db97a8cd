package analytics

import (
	"sort"

	"github.com/airmarket/airline-demand-api/config"
)

const (
	// maxRoutes caps the synthesized route list.
	maxRoutes = 8

	demandMin       = 30
	demandMax       = 90
	demandPerFlight = 10
)

// SynthesizeRoutes generates every unordered airport pair from the counts,
// scores it, and returns the top routes by demand. The pair (i,j) is
// emitted with i's airport as departure; the reverse direction is never
// generated in the same pass. Returns nil when fewer than two airports have
// activity — the caller substitutes the regional mock dataset.
func SynthesizeRoutes(counts *FlightCounts, region config.Region) []Route {
	codes := counts.Codes()
	if len(codes) < 2 {
		return nil
	}

	var routes []Route
	for i, dep := range codes {
		for _, arr := range codes[i+1:] {
			depActivity := counts.Count(dep)
			arrActivity := counts.Count(arr)

			routes = append(routes, Route{
				Departure:       dep,
				Arrival:         arr,
				Price:           region.RoutePrice(dep, arr),
				Demand:          clampDemand((depActivity + arrActivity) * demandPerFlight),
				FlightsDetected: depActivity + arrActivity,
			})
		}
	}

	// Stable: equal-demand routes keep their generation order.
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Demand > routes[j].Demand
	})

	if len(routes) > maxRoutes {
		routes = routes[:maxRoutes]
	}
	return routes
}

func clampDemand(d int) int {
	if d < demandMin {
		return demandMin
	}
	if d > demandMax {
		return demandMax
	}
	return d
}

// MockRoutes converts a region's fixed fallback dataset into routes.
func MockRoutes(region config.Region) []Route {
	routes := make([]Route, 0, len(region.MockRoutes))
	for _, m := range region.MockRoutes {
		routes = append(routes, Route{
			Departure:       m.Departure,
			Arrival:         m.Arrival,
			Price:           m.Price,
			Demand:          m.Demand,
			FlightsDetected: m.Flights,
		})
	}
	return routes
}

// FilterRoutes returns the routes matching an exact "DEP-ARR" string (empty
// matches everything) with demand at or above the threshold.
func FilterRoutes(routes []Route, route string, minDemand int) []Route {
	filtered := []Route{}
	for _, r := range routes {
		if route != "" && r.Departure+"-"+r.Arrival != route {
			continue
		}
		if r.Demand < minDemand {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
