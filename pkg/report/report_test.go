package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbtactl/mbtactl/pkg/stats"
	"github.com/mbtactl/mbtactl/pkg/transit"
)

func TestRoutesOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).Routes("0,1", []transit.Route{
		{ID: "Red", Name: "Red Line", TypeCode: 1},
		{ID: "Mattapan", Name: "Mattapan Trolley", TypeCode: 0},
	})

	assert.Contains(t, out.String(), "All MBTA Routes for types: 0,1:")
	assert.Contains(t, out.String(), "ID: Red, NAME: Red Line, TYPE: Heavy Rail")
	assert.Contains(t, out.String(), "ID: Mattapan, NAME: Mattapan Trolley, TYPE: Light Rail")
}

func TestStopsOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).Stops("Red", []transit.Stop{
		{ID: "place-pktrm", Name: "Park Street", Address: "Park St and Tremont St, Boston, MA 02108"},
	})

	assert.Contains(t, out.String(), "All stops for ROUTE: Red")
	assert.Contains(t, out.String(), "ID: place-pktrm, NAME: Park Street, ADDRESS: Park St and Tremont St, Boston, MA 02108")
}

func TestStopsOutputEmptyRoute(t *testing.T) {
	var out bytes.Buffer
	New(&out).Stops("Green-B", nil)

	assert.Contains(t, out.String(), "All stops for ROUTE: Green-B")
}

func TestStatsOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).Stats(
		[]stats.RouteCount{{RouteID: "Red", Stops: 3}},
		[]stats.RouteCount{{RouteID: "Blue", Stops: 2}},
		[]stats.SharedStop{
			{Stop: transit.Stop{ID: "place-pktrm", Name: "Park Street"}, RouteIDs: []string{"Red", "Green-B"}},
		},
	)

	assert.Contains(t, out.String(), "Route(s) with the most stops:\n  Red with 3 stops")
	assert.Contains(t, out.String(), "Route(s) with the fewest stops:\n  Blue with 2 stops")
	assert.Contains(t, out.String(), "Stops connecting two or more routes")
	assert.Contains(t, out.String(), "Park Street connects Red, Green-B")
}

func TestPathOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).Path("Alewife", "Wonderland", []string{"Red", "Green-B", "Blue"})

	assert.Contains(t, out.String(), "Alewife to Wonderland -> Red -> Green-B -> Blue")
}

func TestPathNotFoundOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).Path("Alewife", "Oak Grove", nil)

	assert.Contains(t, out.String(), "Route not found from Alewife to Oak Grove")
}

func TestUnknownStopOutput(t *testing.T) {
	var out bytes.Buffer
	New(&out).UnknownStop("Narnia")

	assert.Contains(t, out.String(), "Unknown stop NAME: Narnia")
}
