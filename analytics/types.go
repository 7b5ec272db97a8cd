// Package analytics turns raw aircraft state vectors into route-level
// demand estimates: positions are bucketed onto the regional airport
// registry, airport activity is paired into synthetic routes, and a
// deterministic booking series rounds out the dataset.
package analytics

import "time"

// Route is a synthesized demand/price estimate for one airport pair.
// Demand is a popularity score derived from observed flight activity, not
// a real booking metric.
type Route struct {
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	Price           int    `json:"price"`
	Demand          int    `json:"demand"`
	FlightsDetected int    `json:"flights_detected"`
}

// TimeSeriesPoint is one synthetic daily booking observation.
type TimeSeriesPoint struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
	AvgPrice int    `json:"avg_price"`
}

// Snapshot is the full per-request aggregate. Live reports whether the
// routes were derived from upstream data or substituted from the regional
// mock dataset.
type Snapshot struct {
	Routes      []Route           `json:"routes"`
	TimeSeries  []TimeSeriesPoint `json:"time_series"`
	LiveFlights int               `json:"live_flights"`
	Timestamp   time.Time         `json:"timestamp"`
	Live        bool              `json:"-"`
}
