package run

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mbtactl/mbtactl/pkg/config"
	"github.com/mbtactl/mbtactl/pkg/journeygraph"
	"github.com/mbtactl/mbtactl/pkg/mbta"
	"github.com/mbtactl/mbtactl/pkg/report"
	"github.com/mbtactl/mbtactl/pkg/stats"
	"github.com/mbtactl/mbtactl/pkg/transit"
)

// Options carries the already parsed CLI flags. Zero values mean the flag
// was not given.
type Options struct {
	RouteID string
	Filter  string
	Stats   bool
	Path    string
}

// UsageError is an invalid flag value, reported without a stack trace.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Execute drives one invocation: fetch the routes, then the per flag
// sections in the order the original tool printed them. All API calls are
// sequential and any failure aborts the run.
func Execute(cfg config.Config, opts Options, out io.Writer) error {
	filter := opts.Filter
	if filter == "" {
		filter = cfg.DefaultFilter
	}

	typeCodes, err := parseTypeFilter(filter)
	if err != nil {
		return err
	}

	client := mbta.NewClient(cfg)
	reporter := report.New(out)

	routes, err := client.Routes(typeCodes)
	if err != nil {
		return err
	}

	// some API mirrors ignore the filter[type] parameter
	transit.FilterRoutesByType(&routes, typeCodes)

	reporter.Routes(filter, routes)

	if opts.RouteID != "" {
		route, ok := transit.FindRoute(routes, opts.RouteID)
		if !ok {
			// the original tool stops here rather than carrying on to stats
			reporter.UnknownRoute(opts.RouteID)
			return nil
		}

		routeStops, err := client.Stops(route.ID)
		if err != nil {
			return err
		}

		reporter.Stops(route.ID, routeStops)
	}

	if !opts.Stats && opts.Path == "" {
		return nil
	}

	index, err := stats.BuildIndex(transit.RouteIDs(routes), client)
	if err != nil {
		return err
	}

	if opts.Stats {
		reporter.Stats(
			index.ExtremeRoutes(stats.ExtremeMax),
			index.ExtremeRoutes(stats.ExtremeMin),
			index.SharedStops(),
		)
	}

	if opts.Path != "" {
		fromStop, toStop, err := splitPath(opts.Path)
		if err != nil {
			return err
		}

		routeIDs, err := journeygraph.FindPath(index, fromStop, toStop)

		var unknownStop *journeygraph.UnknownStopError
		if errors.As(err, &unknownStop) {
			reporter.UnknownStop(unknownStop.Name)
		} else if err != nil {
			return err
		} else {
			reporter.Path(fromStop, toStop, routeIDs)
		}
	}

	return nil
}

func parseTypeFilter(filter string) ([]int, error) {
	if filter == "" {
		return nil, nil
	}

	var codes []int
	for _, field := range strings.Split(filter, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || !transit.ValidTypeCode(code) {
			return nil, &UsageError{Message: fmt.Sprintf("unknown route type: %s", field)}
		}

		codes = append(codes, code)
	}

	return codes, nil
}

func splitPath(path string) (string, string, error) {
	fromStop, toStop, ok := strings.Cut(path, "-")
	if !ok || fromStop == "" || toStop == "" {
		return "", "", &UsageError{Message: fmt.Sprintf("path must be <Stop1>-<Stop2>: %s", path)}
	}

	return fromStop, toStop, nil
}
