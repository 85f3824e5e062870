package stats

type Extreme string

const (
	ExtremeMin Extreme = "min"
	ExtremeMax Extreme = "max"
)

// RouteCount pairs a route id with its stop count.
type RouteCount struct {
	RouteID string
	Stops   int
}

// ExtremeRoutes returns every route tied at the requested extreme stop
// count, ordered by route id ascending. A route with zero stops counts as 0
// for the minimum. The result is empty only when the index holds no routes.
func (i *RouteStopIndex) ExtremeRoutes(extreme Extreme) []RouteCount {
	routeIDs := i.RouteIDs()
	if len(routeIDs) == 0 {
		return nil
	}

	extremeCount := i.stopsPerRoute[routeIDs[0]]
	for _, routeID := range routeIDs {
		count := i.stopsPerRoute[routeID]

		if extreme == ExtremeMax && count > extremeCount {
			extremeCount = count
		} else if extreme == ExtremeMin && count < extremeCount {
			extremeCount = count
		}
	}

	var extremes []RouteCount
	for _, routeID := range routeIDs {
		if i.stopsPerRoute[routeID] == extremeCount {
			extremes = append(extremes, RouteCount{
				RouteID: routeID,
				Stops:   extremeCount,
			})
		}
	}

	return extremes
}
