package mbta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/mbtactl/mbtactl/pkg/transit"
)

type stopsResponse struct {
	Data *[]struct {
		ID         string `json:"id"`
		Attributes struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"attributes"`
	} `json:"data"`
}

// Stops performs a single GET /stops call filtered by route. A route with
// no stops decodes to an empty list, not an error.
func (c *Client) Stops(routeID string) ([]transit.Stop, error) {
	requestURL := fmt.Sprintf("%s/stops?route=%s", c.baseURL, url.QueryEscape(routeID))

	resp, err := c.get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}

	var stopsResp stopsResponse
	if err := json.Unmarshal(jsonBytes, &stopsResp); err != nil {
		return nil, &DecodeError{URL: requestURL, Err: err}
	}
	if stopsResp.Data == nil {
		return nil, &DecodeError{URL: requestURL, Err: errors.New("response has no data member")}
	}

	var stops []transit.Stop
	for _, record := range *stopsResp.Data {
		stops = append(stops, transit.Stop{
			ID:      record.ID,
			Name:    record.Attributes.Name,
			Address: record.Attributes.Address,
		})
	}

	log.Debug().Str("route", routeID).Int("stops", len(stops)).Msg("Fetched stops from MBTA API")

	return stops, nil
}
