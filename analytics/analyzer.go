package analytics

import (
	"context"
	"time"

	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/opensky"
	"github.com/airmarket/airline-demand-api/pkg/logger"
)

// StateSource supplies raw state vectors for the configured region.
// opensky.Client satisfies it.
type StateSource interface {
	States(ctx context.Context) ([]opensky.StateVector, error)
}

// Analyzer builds per-request demand snapshots for one region. It holds no
// per-request state; a single instance serves all requests.
type Analyzer struct {
	region config.Region
	source StateSource
	now    func() time.Time
}

// Option configures the Analyzer.
type Option func(*Analyzer)

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer creates an analyzer over a state source.
func NewAnalyzer(region config.Region, source StateSource, opts ...Option) *Analyzer {
	a := &Analyzer{
		region: region,
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Region returns the analyzer's regional profile.
func (a *Analyzer) Region() config.Region {
	return a.region
}

// Snapshot fetches live state vectors, examines at most limit of them and
// synthesizes the full aggregate. Any upstream failure, an empty sky, or
// activity at fewer than two airports yields the regional mock dataset —
// never an empty or partial result.
func (a *Analyzer) Snapshot(ctx context.Context, limit int) Snapshot {
	now := a.now()

	states, err := a.source.States(ctx)
	if err != nil {
		logger.WithField("region", a.region.Name).Warn("state fetch failed, serving mock dataset", "error", err)
		return a.mockSnapshot(now)
	}

	counts := CountByAirport(states, limit, a.region.Airports)
	routes := SynthesizeRoutes(counts, a.region)
	if len(routes) == 0 {
		logger.WithField("region", a.region.Name).Debug("not enough classified activity, serving mock dataset",
			"states", len(states), "airports", len(counts.Codes()))
		return a.mockSnapshot(now)
	}

	return Snapshot{
		Routes:      routes,
		TimeSeries:  GenerateTimeSeries(now),
		LiveFlights: counts.Total(),
		Timestamp:   now,
		Live:        true,
	}
}

func (a *Analyzer) mockSnapshot(now time.Time) Snapshot {
	return Snapshot{
		Routes:      MockRoutes(a.region),
		TimeSeries:  GenerateTimeSeries(now),
		LiveFlights: a.region.MockLiveFlights,
		Timestamp:   now,
		Live:        false,
	}
}
