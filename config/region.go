package config

import (
	"fmt"
	"strings"

	"github.com/airmarket/airline-demand-api/pkg/geo"
	"golang.org/x/text/currency"
)

// DefaultRegionName is the deployment region used when REGION is unset.
const DefaultRegionName = "australia"

// Airport is one entry of a regional airport registry. The registry is an
// ordered slice, not a map: the nearest-airport classifier resolves ties by
// scan order, so the order here is part of the contract.
type Airport struct {
	Code  string
	Coord geo.Coordinates
}

// RoutePair keys the static price table. Direction matters: (SYD,MEL) and
// (MEL,SYD) are distinct entries and the forward direction wins on lookup.
type RoutePair struct {
	From string
	To   string
}

// MockRoute is one row of a region's fixed fallback dataset.
type MockRoute struct {
	Departure string
	Arrival   string
	Price     int
	Demand    int
	Flights   int
}

// Region bundles everything that differs between deployments: the bounding
// box queried upstream, the airport registry, the price table and the mock
// dataset substituted when live data is unavailable.
type Region struct {
	Name            string
	BBox            geo.BoundingBox
	Airports        []Airport
	Prices          map[RoutePair]int
	DefaultPrice    int
	Currency        currency.Unit
	MockRoutes      []MockRoute
	MockLiveFlights int
}

// AirportCoord returns the registry coordinates for a code.
func (r Region) AirportCoord(code string) (geo.Coordinates, bool) {
	for _, a := range r.Airports {
		if a.Code == code {
			return a.Coord, true
		}
	}
	return geo.Coordinates{}, false
}

// RoutePrice resolves a pair against the price table: forward entry first,
// then the reverse direction, then the regional default.
func (r Region) RoutePrice(dep, arr string) int {
	if p, ok := r.Prices[RoutePair{From: dep, To: arr}]; ok {
		return p
	}
	if p, ok := r.Prices[RoutePair{From: arr, To: dep}]; ok {
		return p
	}
	return r.DefaultPrice
}

// RegionByName returns the built-in region profile for a name.
func RegionByName(name string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "australia", "au":
		return australia(), nil
	case "europe", "eu":
		return europe(), nil
	default:
		return Region{}, fmt.Errorf("unknown region %q", name)
	}
}

func australia() Region {
	return Region{
		Name: "australia",
		BBox: geo.BoundingBox{LatMin: -44.0, LatMax: -10.0, LonMin: 113.0, LonMax: 154.0},
		Airports: []Airport{
			{Code: "SYD", Coord: geo.Coordinates{Lat: -33.9399, Lon: 151.1753}}, // Sydney
			{Code: "MEL", Coord: geo.Coordinates{Lat: -37.6690, Lon: 144.8410}}, // Melbourne
			{Code: "BNE", Coord: geo.Coordinates{Lat: -27.3842, Lon: 153.1175}}, // Brisbane
			{Code: "PER", Coord: geo.Coordinates{Lat: -31.9403, Lon: 115.9669}}, // Perth
			{Code: "ADL", Coord: geo.Coordinates{Lat: -34.9462, Lon: 138.5317}}, // Adelaide
			{Code: "DRW", Coord: geo.Coordinates{Lat: -12.4089, Lon: 130.8765}}, // Darwin
			{Code: "CNS", Coord: geo.Coordinates{Lat: -16.8736, Lon: 145.7458}}, // Cairns
			{Code: "CBR", Coord: geo.Coordinates{Lat: -35.3069, Lon: 149.1951}}, // Canberra
		},
		Prices: map[RoutePair]int{
			{From: "SYD", To: "MEL"}: 180, {From: "MEL", To: "SYD"}: 185,
			{From: "SYD", To: "BNE"}: 220, {From: "BNE", To: "SYD"}: 225,
			{From: "SYD", To: "PER"}: 450, {From: "PER", To: "SYD"}: 460,
			{From: "MEL", To: "BNE"}: 240, {From: "BNE", To: "MEL"}: 245,
			{From: "MEL", To: "PER"}: 380, {From: "PER", To: "MEL"}: 385,
			{From: "BNE", To: "PER"}: 420, {From: "PER", To: "BNE"}: 425,
			{From: "SYD", To: "ADL"}: 280, {From: "ADL", To: "SYD"}: 285,
			{From: "MEL", To: "ADL"}: 195, {From: "ADL", To: "MEL"}: 200,
		},
		DefaultPrice: 350,
		Currency:     currency.MustParseISO("AUD"),
		MockRoutes: []MockRoute{
			{Departure: "SYD", Arrival: "MEL", Price: 180, Demand: 85, Flights: 12},
			{Departure: "MEL", Arrival: "BNE", Price: 220, Demand: 78, Flights: 9},
			{Departure: "SYD", Arrival: "PER", Price: 450, Demand: 65, Flights: 6},
			{Departure: "BNE", Arrival: "ADL", Price: 280, Demand: 72, Flights: 7},
			{Departure: "MEL", Arrival: "SYD", Price: 185, Demand: 90, Flights: 11},
			{Departure: "PER", Arrival: "DRW", Price: 380, Demand: 45, Flights: 4},
			{Departure: "ADL", Arrival: "MEL", Price: 195, Demand: 68, Flights: 8},
			{Departure: "CNS", Arrival: "SYD", Price: 520, Demand: 55, Flights: 5},
		},
		MockLiveFlights: 62,
	}
}

func europe() Region {
	return Region{
		Name: "europe",
		BBox: geo.BoundingBox{LatMin: 36.0, LatMax: 60.0, LonMin: -10.0, LonMax: 25.0},
		Airports: []Airport{
			{Code: "LHR", Coord: geo.Coordinates{Lat: 51.4700, Lon: -0.4543}}, // London Heathrow
			{Code: "CDG", Coord: geo.Coordinates{Lat: 49.0097, Lon: 2.5479}},  // Paris Charles de Gaulle
			{Code: "AMS", Coord: geo.Coordinates{Lat: 52.3105, Lon: 4.7683}},  // Amsterdam Schiphol
			{Code: "FRA", Coord: geo.Coordinates{Lat: 50.0379, Lon: 8.5622}},  // Frankfurt
			{Code: "MAD", Coord: geo.Coordinates{Lat: 40.4983, Lon: -3.5676}}, // Madrid Barajas
			{Code: "FCO", Coord: geo.Coordinates{Lat: 41.8003, Lon: 12.2389}}, // Rome Fiumicino
			{Code: "ZRH", Coord: geo.Coordinates{Lat: 47.4581, Lon: 8.5555}},  // Zurich
			{Code: "DUB", Coord: geo.Coordinates{Lat: 53.4264, Lon: -6.2499}}, // Dublin
		},
		Prices: map[RoutePair]int{
			{From: "LHR", To: "CDG"}: 120, {From: "CDG", To: "LHR"}: 125,
			{From: "LHR", To: "AMS"}: 110, {From: "AMS", To: "LHR"}: 115,
			{From: "LHR", To: "FRA"}: 140, {From: "FRA", To: "LHR"}: 145,
			{From: "CDG", To: "FRA"}: 130, {From: "FRA", To: "CDG"}: 135,
			{From: "CDG", To: "MAD"}: 160, {From: "MAD", To: "CDG"}: 165,
			{From: "AMS", To: "FRA"}: 105, {From: "FRA", To: "AMS"}: 110,
			{From: "LHR", To: "FCO"}: 175, {From: "FCO", To: "LHR"}: 180,
			{From: "LHR", To: "DUB"}: 90, {From: "DUB", To: "LHR"}: 95,
		},
		DefaultPrice: 260,
		Currency:     currency.MustParseISO("EUR"),
		MockRoutes: []MockRoute{
			{Departure: "LHR", Arrival: "CDG", Price: 120, Demand: 88, Flights: 14},
			{Departure: "AMS", Arrival: "FRA", Price: 105, Demand: 76, Flights: 10},
			{Departure: "LHR", Arrival: "AMS", Price: 110, Demand: 82, Flights: 11},
			{Departure: "CDG", Arrival: "MAD", Price: 160, Demand: 64, Flights: 7},
			{Departure: "FRA", Arrival: "LHR", Price: 145, Demand: 90, Flights: 13},
			{Departure: "FCO", Arrival: "ZRH", Price: 150, Demand: 48, Flights: 5},
			{Departure: "DUB", Arrival: "LHR", Price: 95, Demand: 71, Flights: 9},
			{Departure: "MAD", Arrival: "FCO", Price: 170, Demand: 57, Flights: 6},
		},
		MockLiveFlights: 71,
	}
}
