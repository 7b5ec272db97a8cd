package analytics

import (
	"testing"

	"github.com/airmarket/airline-demand-api/opensky"
	"github.com/airmarket/airline-demand-api/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func stateAt(coord geo.Coordinates) opensky.StateVector {
	return opensky.StateVector{Coord: coord, HasPosition: true}
}

func TestCountByAirportBucketsByProximity(t *testing.T) {
	region := australiaRegion(t)
	syd, _ := region.AirportCoord("SYD")
	mel, _ := region.AirportCoord("MEL")

	states := []opensky.StateVector{
		stateAt(syd),
		stateAt(geo.Coordinates{Lat: syd.Lat + 0.2, Lon: syd.Lon - 0.1}),
		stateAt(mel),
		{ICAO24: "nopos"}, // no position, dropped silently
		stateAt(geo.Coordinates{Lat: -25.0, Lon: 130.0}), // unclassifiable
	}

	counts := CountByAirport(states, 50, region.Airports)

	assert.Equal(t, []string{"SYD", "MEL"}, counts.Codes())
	assert.Equal(t, 2, counts.Count("SYD"))
	assert.Equal(t, 1, counts.Count("MEL"))
	assert.Equal(t, 3, counts.Total())
}

func TestCountByAirportHonorsLimit(t *testing.T) {
	region := australiaRegion(t)
	syd, _ := region.AirportCoord("SYD")

	states := make([]opensky.StateVector, 10)
	for i := range states {
		states[i] = stateAt(syd)
	}

	assert.Equal(t, 4, CountByAirport(states, 4, region.Airports).Total())
	assert.Equal(t, 10, CountByAirport(states, 50, region.Airports).Total())
	assert.Equal(t, 0, CountByAirport(states, 0, region.Airports).Total())
	assert.Equal(t, 0, CountByAirport(states, -3, region.Airports).Total())
}

func TestFlightCountsPreserveFirstSeenOrder(t *testing.T) {
	counts := NewFlightCounts()
	for _, code := range []string{"MEL", "SYD", "MEL", "BNE", "SYD", "MEL"} {
		counts.Add(code)
	}

	assert.Equal(t, []string{"MEL", "SYD", "BNE"}, counts.Codes())
	assert.Equal(t, 3, counts.Count("MEL"))
	assert.Equal(t, 2, counts.Count("SYD"))
	assert.Equal(t, 1, counts.Count("BNE"))
	assert.Equal(t, 0, counts.Count("PER"))
	assert.Equal(t, 6, counts.Total())
}
