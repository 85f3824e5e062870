package journeygraph

import (
	"fmt"
	"strings"

	"github.com/mbtactl/mbtactl/pkg/stats"
	"github.com/mbtactl/mbtactl/pkg/util"
)

// Graph is an adjacency list over routes. Two routes are connected when at
// least one stop serves both.
type Graph struct {
	adjacency map[string][]string
}

type UnknownStopError struct {
	Name string
}

func (e *UnknownStopError) Error() string {
	return fmt.Sprintf("unknown stop: %s", e.Name)
}

// FromIndex builds the route connection graph. Stop ids are walked in
// sorted order so the adjacency lists come out the same on every run.
func FromIndex(index *stats.RouteStopIndex) *Graph {
	graph := &Graph{
		adjacency: map[string][]string{},
	}

	for _, stopID := range index.StopIDs() {
		routeIDs := index.RoutesForStop(stopID)

		for _, routeID := range routeIDs {
			graph.adjacency[routeID] = util.RemoveDuplicateStrings(append(graph.adjacency[routeID], routeIDs...))
		}
	}

	return graph
}

// Path runs a breadth first search from one route to another. The returned
// sequence includes both endpoints; nil means the routes are not connected.
func (g *Graph) Path(from string, to string) []string {
	if from == to {
		return []string{from}
	}

	visited := map[string]bool{from: true}
	queue := [][]string{{from}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		for _, neighbour := range g.adjacency[path[len(path)-1]] {
			if neighbour == to {
				return append(path, neighbour)
			}

			if !visited[neighbour] {
				visited[neighbour] = true

				nextPath := make([]string, len(path), len(path)+1)
				copy(nextPath, path)
				queue = append(queue, append(nextPath, neighbour))
			}
		}
	}

	return nil
}

// FindPath resolves two stop names against the index and returns the route
// sequence connecting them. Stops are matched by display name since that is
// what the user types.
func FindPath(index *stats.RouteStopIndex, fromStop string, toStop string) ([]string, error) {
	fromRoutes := routesServingStopName(index, fromStop)
	if len(fromRoutes) == 0 {
		return nil, &UnknownStopError{Name: fromStop}
	}

	toRoutes := routesServingStopName(index, toStop)
	if len(toRoutes) == 0 {
		return nil, &UnknownStopError{Name: toStop}
	}

	graph := FromIndex(index)

	var shortest []string
	for _, from := range fromRoutes {
		for _, to := range toRoutes {
			path := graph.Path(from, to)
			if path != nil && (shortest == nil || len(path) < len(shortest)) {
				shortest = path
			}
		}
	}

	return shortest, nil
}

func routesServingStopName(index *stats.RouteStopIndex, name string) []string {
	var routeIDs []string

	for _, stopID := range index.StopIDs() {
		stop, _ := index.Stop(stopID)
		if strings.EqualFold(stop.Name, name) {
			routeIDs = append(routeIDs, index.RoutesForStop(stopID)...)
		}
	}

	return util.RemoveDuplicateStrings(routeIDs)
}
