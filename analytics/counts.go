package analytics

import (
	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/opensky"
)

// FlightCounts is an airport-keyed activity count that remembers the order
// airports were first seen. Route generation iterates that order, which is
// what makes pair order and demand tie-breaks deterministic.
type FlightCounts struct {
	codes  []string
	counts map[string]int
}

// NewFlightCounts creates an empty count set.
func NewFlightCounts() *FlightCounts {
	return &FlightCounts{counts: make(map[string]int)}
}

// Add increments the count for an airport code.
func (f *FlightCounts) Add(code string) {
	if _, ok := f.counts[code]; !ok {
		f.codes = append(f.codes, code)
	}
	f.counts[code]++
}

// Count returns the activity count for a code, zero if unseen.
func (f *FlightCounts) Count(code string) int {
	return f.counts[code]
}

// Codes returns the distinct airports in first-seen order.
func (f *FlightCounts) Codes() []string {
	return f.codes
}

// Total returns the number of classified flights across all airports.
func (f *FlightCounts) Total() int {
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}

// CountByAirport buckets state vectors onto the airport registry. Only the
// first limit records are examined (a non-positive limit examines none);
// records without a position, or farther than the classification threshold
// from every airport, are dropped silently.
func CountByAirport(states []opensky.StateVector, limit int, airports []config.Airport) *FlightCounts {
	counts := NewFlightCounts()

	if limit < 0 {
		limit = 0
	}
	if limit > len(states) {
		limit = len(states)
	}

	for _, sv := range states[:limit] {
		if !sv.HasPosition {
			continue
		}
		if code, ok := NearestAirport(sv.Coord, airports); ok {
			counts.Add(code)
		}
	}

	return counts
}
