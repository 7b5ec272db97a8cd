package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/airmarket/airline-demand-api/analytics"
	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Produce(context.Context, Summary) (string, error) {
	g.calls++
	return g.text, g.err
}

func testSummary(t *testing.T) Summary {
	t.Helper()
	region, err := config.RegionByName("australia")
	require.NoError(t, err)

	return NewSummary(region, analytics.Snapshot{
		Routes: []analytics.Route{
			{Departure: "MEL", Arrival: "SYD", Price: 185, Demand: 90, FlightsDetected: 11},
			{Departure: "SYD", Arrival: "MEL", Price: 180, Demand: 85, FlightsDetected: 12},
			{Departure: "MEL", Arrival: "BNE", Price: 220, Demand: 78, FlightsDetected: 9},
			{Departure: "BNE", Arrival: "ADL", Price: 280, Demand: 72, FlightsDetected: 7},
		},
		LiveFlights: 39,
	})
}

func TestNewSummaryTakesTopThreeRoutes(t *testing.T) {
	s := testSummary(t)

	assert.Equal(t, "australia", s.Region)
	assert.Equal(t, "AUD", s.CurrencyCode)
	assert.Equal(t, 39, s.LiveFlights)
	require.Len(t, s.TopRoutes, 3)
	assert.Equal(t, "MEL", s.TopRoutes[0].Departure)
}

func TestSummaryPrompt(t *testing.T) {
	prompt := testSummary(t).Prompt()

	assert.Contains(t, prompt, "Live flights detected: 39")
	assert.Contains(t, prompt, "Top routes: MEL-SYD, SYD-MEL, MEL-BNE")
	assert.Contains(t, prompt, "3 key market insights")
}

func TestInsightsExternalTierWinsAndIsCached(t *testing.T) {
	gen := &stubGenerator{text: "external narrative"}
	f := NewFormatter(cache.NewMemoryCache(), gen)
	s := testSummary(t)

	assert.Equal(t, "external narrative", f.Insights(context.Background(), s))
	assert.Equal(t, 1, gen.calls)

	// Second call hits the cache verbatim even though the data changed:
	// the cache is not keyed by input.
	changed := s
	changed.LiveFlights = 99
	assert.Equal(t, "external narrative", f.Insights(context.Background(), changed))
	assert.Equal(t, 1, gen.calls)
}

func TestInsightsFallsThroughFailedGenerators(t *testing.T) {
	failing := &stubGenerator{err: errors.New("rate limited")}
	second := &stubGenerator{text: "second opinion"}
	f := NewFormatter(cache.NewMemoryCache(), failing, second)

	got := f.Insights(context.Background(), testSummary(t))
	assert.Equal(t, "second opinion", got)
	assert.Equal(t, 1, failing.calls)
}

func TestInsightsTemplateFallbackNotCached(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	f := NewFormatter(cache.NewMemoryCache(), gen)
	s := testSummary(t)

	got := f.Insights(context.Background(), s)
	assert.Contains(t, got, "**LIVE DATA from OpenSky Network** (39 flights detected)")

	// The provider recovers; the next request must reach it because the
	// template output was never cached.
	gen.err = nil
	gen.text = "recovered"
	assert.Equal(t, "recovered", f.Insights(context.Background(), s))
}

func TestInsightsNoGeneratorsRendersTemplate(t *testing.T) {
	f := NewFormatter(cache.NewMemoryCache())
	s := testSummary(t)

	got := f.Insights(context.Background(), s)

	assert.Contains(t, got, "**Key Insights:**")
	assert.Contains(t, got, "MEL-SYD corridor leads with 90% demand")
	assert.Contains(t, got, "39 active flights over australia")
	// Mean of 185, 180, 220.
	assert.Contains(t, got, "AUD 195")
	assert.True(t, strings.HasPrefix(got, "**LIVE DATA from OpenSky Network**"))
}

func TestRenderTemplateNoRoutes(t *testing.T) {
	got := RenderTemplate(Summary{Region: "australia", CurrencyCode: "AUD", LiveFlights: 0})

	assert.Contains(t, got, "(0 flights detected)")
	assert.NotContains(t, got, "corridor")
	assert.NotContains(t, got, "Average fare")
}
