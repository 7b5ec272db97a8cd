// Package insights turns an aggregate snapshot into a narrative text
// block. Three tiers, first success wins: the process-wide cache, an
// external completion provider, and a deterministic template.
package insights

import (
	"fmt"
	"strings"

	"github.com/airmarket/airline-demand-api/analytics"
	"github.com/airmarket/airline-demand-api/config"
)

// topRouteCount is how many routes the summary names for the external
// provider; the prompt stays short on purpose.
const topRouteCount = 3

// Summary is the condensed view of a snapshot handed to the generators.
type Summary struct {
	Region       string
	CurrencyCode string
	LiveFlights  int
	TopRoutes    []analytics.Route
}

// NewSummary condenses a snapshot for narrative generation. Routes arrive
// sorted by demand, so the top entries are simply the first ones.
func NewSummary(region config.Region, snap analytics.Snapshot) Summary {
	top := snap.Routes
	if len(top) > topRouteCount {
		top = top[:topRouteCount]
	}
	return Summary{
		Region:       region.Name,
		CurrencyCode: region.Currency.String(),
		LiveFlights:  snap.LiveFlights,
		TopRoutes:    top,
	}
}

// Prompt renders the completion request for the external tier.
func (s Summary) Prompt() string {
	names := make([]string, 0, len(s.TopRoutes))
	for _, r := range s.TopRoutes {
		names = append(names, r.Departure+"-"+r.Arrival)
	}

	var b strings.Builder
	b.WriteString("Analyze this LIVE airline data from OpenSky Network:\n")
	fmt.Fprintf(&b, "Live flights detected: %d\n", s.LiveFlights)
	fmt.Fprintf(&b, "Top routes: %s\n\n", strings.Join(names, ", "))
	b.WriteString("Provide 3 key market insights in under 150 words. ")
	b.WriteString("Focus on: demand patterns, pricing trends, route popularity.")
	return b.String()
}
