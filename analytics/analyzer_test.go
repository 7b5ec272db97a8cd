package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/airmarket/airline-demand-api/opensky"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	states []opensky.StateVector
	err    error
}

func (s *stubSource) States(context.Context) ([]opensky.StateVector, error) {
	return s.states, s.err
}

var fixedNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestSnapshotLiveData(t *testing.T) {
	region := australiaRegion(t)
	syd, _ := region.AirportCoord("SYD")
	mel, _ := region.AirportCoord("MEL")

	source := &stubSource{states: []opensky.StateVector{
		stateAt(syd), stateAt(syd), stateAt(mel),
	}}
	a := NewAnalyzer(region, source, WithClock(fixedClock))

	snap := a.Snapshot(context.Background(), 50)

	assert.True(t, snap.Live)
	assert.Equal(t, 3, snap.LiveFlights)
	assert.Equal(t, fixedNow, snap.Timestamp)
	require.Len(t, snap.Routes, 1)
	assert.Equal(t, "SYD", snap.Routes[0].Departure)
	assert.Equal(t, "MEL", snap.Routes[0].Arrival)
	assert.Len(t, snap.TimeSeries, 30)
}

func TestSnapshotUpstreamFailureServesMock(t *testing.T) {
	region := australiaRegion(t)
	source := &stubSource{err: opensky.ErrUnavailable}
	a := NewAnalyzer(region, source, WithClock(fixedClock))

	snap := a.Snapshot(context.Background(), 50)

	assert.False(t, snap.Live)
	assert.Equal(t, region.MockLiveFlights, snap.LiveFlights)
	if diff := deep.Equal(snap.Routes, MockRoutes(region)); diff != nil {
		t.Errorf("mock routes mismatch: %v", diff)
	}
	assert.Len(t, snap.TimeSeries, 30)
}

func TestSnapshotEmptySkyServesMock(t *testing.T) {
	region := australiaRegion(t)
	a := NewAnalyzer(region, &stubSource{}, WithClock(fixedClock))

	snap := a.Snapshot(context.Background(), 50)

	assert.False(t, snap.Live)
	assert.Equal(t, 62, snap.LiveFlights)
	assert.Len(t, snap.Routes, 8)
}

func TestSnapshotSingleAirportServesMock(t *testing.T) {
	region := australiaRegion(t)
	syd, _ := region.AirportCoord("SYD")
	a := NewAnalyzer(region, &stubSource{states: []opensky.StateVector{
		stateAt(syd), stateAt(syd),
	}}, WithClock(fixedClock))

	snap := a.Snapshot(context.Background(), 50)

	assert.False(t, snap.Live)
	assert.Len(t, snap.Routes, 8)
}

func TestSnapshotZeroLimitServesMock(t *testing.T) {
	region := australiaRegion(t)
	syd, _ := region.AirportCoord("SYD")
	mel, _ := region.AirportCoord("MEL")
	a := NewAnalyzer(region, &stubSource{states: []opensky.StateVector{
		stateAt(syd), stateAt(mel),
	}}, WithClock(fixedClock))

	snap := a.Snapshot(context.Background(), 0)

	assert.False(t, snap.Live)
	assert.Equal(t, region.MockLiveFlights, snap.LiveFlights)
}
