package transit

import (
	"strings"

	"github.com/mbtactl/mbtactl/pkg/util"
)

// Route is a named transit line. Immutable once fetched.
type Route struct {
	ID          string
	Name        string
	TypeCode    int
	Description string
}

func (r Route) TransportType() TransportType {
	return TransportTypeFromCode(r.TypeCode)
}

// FilterRoutesByType keeps only routes whose type code appears in codes.
// An empty code list keeps everything.
func FilterRoutesByType(routes *[]Route, codes []int) {
	if len(codes) == 0 {
		return
	}

	codeSet := map[int]bool{}
	for _, code := range codes {
		codeSet[code] = true
	}

	util.InPlaceFilter(routes, func(route Route) bool {
		return codeSet[route.TypeCode]
	})
}

// FindRoute resolves a user supplied route identifier against the fetched
// route list, ignoring case so that RED matches the canonical Red.
func FindRoute(routes []Route, id string) (Route, bool) {
	for _, route := range routes {
		if strings.EqualFold(route.ID, id) {
			return route, true
		}
	}

	return Route{}, false
}

func RouteIDs(routes []Route) []string {
	ids := make([]string, 0, len(routes))
	for _, route := range routes {
		ids = append(ids, route.ID)
	}

	return ids
}
