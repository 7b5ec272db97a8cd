package analytics

import "time"

const (
	timeSeriesDays = 30

	baseBookings      = 150
	bookingsTrendStep = 5
	bookingsWeekSwing = 20
	basePrice         = 250
	priceTrendStep    = 3
)

// GenerateTimeSeries produces the synthetic 30-day booking trend: one point
// per calendar day for the 30 days ending yesterday, oldest first. It is a
// pure function of now — same instant, same series — but the window shifts
// with the clock, so the result must never be cached as a constant. The
// formula is indexed by position in the sequence, not calendar weekday: a
// linear trend plus a seven-day cycle.
func GenerateTimeSeries(now time.Time) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0, timeSeriesDays)
	for i := 0; i < timeSeriesDays; i++ {
		day := now.AddDate(0, 0, i-timeSeriesDays)
		points = append(points, TimeSeriesPoint{
			Date:     day.Format("2006-01-02"),
			Bookings: baseBookings + i*bookingsTrendStep + (i%7)*bookingsWeekSwing,
			AvgPrice: basePrice + i*priceTrendStep,
		})
	}
	return points
}
