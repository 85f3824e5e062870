package mbta

import "fmt"

// NetworkError covers connection, DNS and timeout failures as well as
// non-200 responses from the API.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GET %s: %s", e.URL, e.Err)
	}

	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError means the response body was not the JSON:API shape we expect.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
