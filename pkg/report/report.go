package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbtactl/mbtactl/pkg/stats"
	"github.com/mbtactl/mbtactl/pkg/transit"
)

const banner = "\n--------------------------------------------\n"

// Reporter turns fetched or aggregated data into line oriented text. No
// business logic lives here.
type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Routes(filter string, routes []transit.Route) {
	if filter == "" {
		fmt.Fprintf(r.out, "All MBTA Routes:%s", banner)
	} else {
		fmt.Fprintf(r.out, "All MBTA Routes for types: %s:%s", filter, banner)
	}

	for _, route := range routes {
		fmt.Fprintf(r.out, "ID: %s, NAME: %s, TYPE: %s\n", route.ID, route.Name, route.TransportType())
	}
}

func (r *Reporter) Stops(routeID string, routeStops []transit.Stop) {
	fmt.Fprintf(r.out, "\nAll stops for ROUTE: %s\n", routeID)

	for _, stop := range routeStops {
		fmt.Fprintf(r.out, "ID: %s, NAME: %s, ADDRESS: %s\n", stop.ID, stop.Name, stop.Address)
	}
}

func (r *Reporter) UnknownRoute(routeID string) {
	fmt.Fprintf(r.out, "\nUnknown Route NAME: %s\n", routeID)
}

func (r *Reporter) UnknownStop(name string) {
	fmt.Fprintf(r.out, "\nUnknown stop NAME: %s\n", name)
}

func (r *Reporter) Stats(most []stats.RouteCount, least []stats.RouteCount, shared []stats.SharedStop) {
	fmt.Fprintf(r.out, "\nRoute(s) with the most stops:\n")
	for _, routeCount := range most {
		fmt.Fprintf(r.out, "  %s with %d stops\n", routeCount.RouteID, routeCount.Stops)
	}

	fmt.Fprintf(r.out, "Route(s) with the fewest stops:\n")
	for _, routeCount := range least {
		fmt.Fprintf(r.out, "  %s with %d stops\n", routeCount.RouteID, routeCount.Stops)
	}

	fmt.Fprintf(r.out, "\nStops connecting two or more routes%s", banner)
	for _, sharedStop := range shared {
		fmt.Fprintf(r.out, "%s connects %s\n", sharedStop.Stop.Name, strings.Join(sharedStop.RouteIDs, ", "))
	}
}

func (r *Reporter) Path(fromStop string, toStop string, routeIDs []string) {
	if len(routeIDs) == 0 {
		fmt.Fprintf(r.out, "\nRoute not found from %s to %s\n", fromStop, toStop)
		return
	}

	fmt.Fprintf(r.out, "\n%s to %s -> %s\n", fromStop, toStop, strings.Join(routeIDs, " -> "))
}
