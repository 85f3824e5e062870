package mbta

import (
	"net/http"

	"github.com/mbtactl/mbtactl/pkg/config"
)

// Client queries the MBTA v3 REST API. Requests are issued one at a time
// with no retries; any failure is terminal for the invocation.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *Client) get(requestURL string) (*http.Response, error) {
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &NetworkError{URL: requestURL, StatusCode: resp.StatusCode}
	}

	return resp, nil
}
