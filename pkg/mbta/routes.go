package mbta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"

	"github.com/mbtactl/mbtactl/pkg/transit"
)

// Data is a pointer so that a body without the JSON:API data member can be
// told apart from a legitimate empty collection.
type routesResponse struct {
	Data *[]struct {
		ID         string `json:"id"`
		Attributes struct {
			LongName    string `json:"long_name"`
			Description string `json:"description"`
			Type        int    `json:"type"`
		} `json:"attributes"`
	} `json:"data"`
}

// Routes performs a single GET /routes call. A non-empty typeCodes list is
// passed through as the filter[type] query parameter, the same server side
// filter the API offers.
func (c *Client) Routes(typeCodes []int) ([]transit.Route, error) {
	requestURL := fmt.Sprintf("%s/routes", c.baseURL)
	if len(typeCodes) > 0 {
		codes := make([]string, 0, len(typeCodes))
		for _, code := range typeCodes {
			codes = append(codes, strconv.Itoa(code))
		}

		requestURL = fmt.Sprintf("%s?filter[type]=%s", requestURL, url.QueryEscape(strings.Join(codes, ",")))
	}

	resp, err := c.get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}

	var routesResp routesResponse
	if err := json.Unmarshal(jsonBytes, &routesResp); err != nil {
		return nil, &DecodeError{URL: requestURL, Err: err}
	}
	if routesResp.Data == nil {
		return nil, &DecodeError{URL: requestURL, Err: errors.New("response has no data member")}
	}

	var routes []transit.Route
	for _, record := range *routesResp.Data {
		routes = append(routes, transit.Route{
			ID:          record.ID,
			Name:        record.Attributes.LongName,
			TypeCode:    record.Attributes.Type,
			Description: record.Attributes.Description,
		})
	}

	log.Debug().Int("routes", len(routes)).Msg("Fetched routes from MBTA API")
	log.Debug().Msg(pretty.Sprint(routes))

	return routes, nil
}
