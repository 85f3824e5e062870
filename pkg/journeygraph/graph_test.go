package journeygraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbtactl/mbtactl/pkg/stats"
	"github.com/mbtactl/mbtactl/pkg/transit"
)

type fixedStopSource map[string][]transit.Stop

func (s fixedStopSource) Stops(routeID string) ([]transit.Stop, error) {
	return s[routeID], nil
}

func buildTestIndex(t *testing.T) *stats.RouteStopIndex {
	t.Helper()

	source := fixedStopSource{
		"Red": {
			{ID: "place-alfcl", Name: "Alewife"},
			{ID: "place-pktrm", Name: "Park Street"},
		},
		"Green-B": {
			{ID: "place-pktrm", Name: "Park Street"},
			{ID: "place-kencl", Name: "Kenmore"},
		},
		"Blue": {
			{ID: "place-kencl", Name: "Kenmore"},
			{ID: "place-wondl", Name: "Wonderland"},
		},
		"Orange": {
			{ID: "place-ogmnl", Name: "Oak Grove"},
		},
	}

	index, err := stats.BuildIndex([]string{"Red", "Green-B", "Blue", "Orange"}, source)
	require.NoError(t, err)

	return index
}

func TestFromIndexConnectsRoutesBySharedStops(t *testing.T) {
	graph := FromIndex(buildTestIndex(t))

	assert.ElementsMatch(t, []string{"Red", "Green-B"}, graph.adjacency["Red"])
	assert.ElementsMatch(t, []string{"Red", "Green-B", "Blue"}, graph.adjacency["Green-B"])
}

func TestPathAcrossConnectingRoutes(t *testing.T) {
	path, err := FindPath(buildTestIndex(t), "Alewife", "Wonderland")
	require.NoError(t, err)

	assert.Equal(t, []string{"Red", "Green-B", "Blue"}, path)
}

func TestPathWithinSingleRoute(t *testing.T) {
	path, err := FindPath(buildTestIndex(t), "Alewife", "Park Street")
	require.NoError(t, err)

	assert.Equal(t, []string{"Red"}, path)
}

func TestPathMatchesStopNamesCaseInsensitively(t *testing.T) {
	path, err := FindPath(buildTestIndex(t), "alewife", "KENMORE")
	require.NoError(t, err)

	assert.Equal(t, []string{"Red", "Green-B"}, path)
}

func TestPathToDisconnectedRouteIsNil(t *testing.T) {
	path, err := FindPath(buildTestIndex(t), "Alewife", "Oak Grove")
	require.NoError(t, err)

	assert.Nil(t, path)
}

func TestPathUnknownStop(t *testing.T) {
	_, err := FindPath(buildTestIndex(t), "Alewife", "Narnia")

	var unknownStop *UnknownStopError
	require.ErrorAs(t, err, &unknownStop)
	assert.Equal(t, "Narnia", unknownStop.Name)
}
