package stats

import (
	"golang.org/x/exp/slices"

	"github.com/mbtactl/mbtactl/pkg/transit"
	"github.com/mbtactl/mbtactl/pkg/util"
)

// StopSource supplies the stop list for a route. The MBTA API client
// satisfies it; tests substitute a fixed map.
type StopSource interface {
	Stops(routeID string) ([]transit.Stop, error)
}

// RouteStopIndex maps every stop id onto the route ids serving it. Route
// ids are recorded in first seen order; a route that returned no stops is
// still tracked so it participates in the minimum stop count.
type RouteStopIndex struct {
	stops         map[string]transit.Stop
	routesForStop map[string][]string
	stopsPerRoute map[string]int
}

// BuildIndex fetches the stops of each route strictly sequentially, in the
// order the route ids were selected.
func BuildIndex(routeIDs []string, source StopSource) (*RouteStopIndex, error) {
	index := &RouteStopIndex{
		stops:         map[string]transit.Stop{},
		routesForStop: map[string][]string{},
		stopsPerRoute: map[string]int{},
	}

	for _, routeID := range routeIDs {
		stops, err := source.Stops(routeID)
		if err != nil {
			return nil, err
		}

		if _, ok := index.stopsPerRoute[routeID]; !ok {
			index.stopsPerRoute[routeID] = 0
		}

		for _, stop := range stops {
			index.stops[stop.ID] = stop

			if !util.ContainsString(index.routesForStop[stop.ID], routeID) {
				index.routesForStop[stop.ID] = append(index.routesForStop[stop.ID], routeID)
				index.stopsPerRoute[routeID] += 1
			}
		}
	}

	return index, nil
}

// StopIDs returns every indexed stop id in ascending order.
func (i *RouteStopIndex) StopIDs() []string {
	ids := make([]string, 0, len(i.stops))
	for id := range i.stops {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// RouteIDs returns every indexed route id in ascending order.
func (i *RouteStopIndex) RouteIDs() []string {
	ids := make([]string, 0, len(i.stopsPerRoute))
	for id := range i.stopsPerRoute {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func (i *RouteStopIndex) Stop(stopID string) (transit.Stop, bool) {
	stop, ok := i.stops[stopID]

	return stop, ok
}

// RoutesForStop returns the route ids serving a stop, in first seen order.
func (i *RouteStopIndex) RoutesForStop(stopID string) []string {
	return i.routesForStop[stopID]
}

func (i *RouteStopIndex) StopCount(routeID string) int {
	return i.stopsPerRoute[routeID]
}

// SharedStop is a stop whose route set has two or more members.
type SharedStop struct {
	Stop     transit.Stop
	RouteIDs []string
}

// SharedStops returns the stops served by two or more routes, ordered by
// stop id ascending.
func (i *RouteStopIndex) SharedStops() []SharedStop {
	var shared []SharedStop

	for _, stopID := range i.StopIDs() {
		routeIDs := i.routesForStop[stopID]
		if len(routeIDs) >= 2 {
			shared = append(shared, SharedStop{
				Stop:     i.stops[stopID],
				RouteIDs: routeIDs,
			})
		}
	}

	return shared
}
