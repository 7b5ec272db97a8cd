package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/airmarket/airline-demand-api/analytics"
	"github.com/airmarket/airline-demand-api/insights"
	"github.com/gin-gonic/gin"
)

// DataSource is the label reported with every dataset. The mock fallback
// keeps the same label: the response shape is identical either way and the
// dashboard treats the field as a display string.
const DataSource = "OpenSky Network (Live)"

// GetData returns the handler for the full aggregate: synthesized routes,
// the 30-day booking series, the narrative block and the live flight count.
// Collaborator failures never surface here; the analyzer and formatter
// both degrade internally, so this endpoint always answers 200 with a
// fully populated body.
func GetData(analyzer *analytics.Analyzer, formatter *insights.Formatter, defaultLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := intQuery(c, "limit", defaultLimit)

		snap := analyzer.Snapshot(c.Request.Context(), limit)
		summary := insights.NewSummary(analyzer.Region(), snap)
		narrative := formatter.Insights(c.Request.Context(), summary)

		c.JSON(http.StatusOK, gin.H{
			"routes":       snap.Routes,
			"time_series":  snap.TimeSeries,
			"insights":     narrative,
			"live_flights": snap.LiveFlights,
			"timestamp":    snap.Timestamp,
			"data_source":  DataSource,
		})
	}
}

// FilterData returns the handler for route filtering. The dataset is
// re-fetched per call rather than reusing a prior snapshot, so the filter
// runs on current data.
func FilterData(analyzer *analytics.Analyzer, defaultLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Query("route")
		minDemand := intQuery(c, "min_demand", 0)

		snap := analyzer.Snapshot(c.Request.Context(), defaultLimit)

		c.JSON(http.StatusOK, gin.H{
			"routes": analytics.FilterRoutes(snap.Routes, route, minDemand),
		})
	}
}

// Health returns the liveness handler.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	}
}

// intQuery parses an integer query parameter, falling back to def when the
// parameter is absent or not a number. Negative and zero values pass
// through unvalidated; the analyzer treats them as "examine nothing".
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
