// Package opensky is a client for the OpenSky Network state-vector API.
// No authentication is required for the anonymous bounding-box query this
// service uses.
package opensky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/pkg/geo"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnavailable is returned for any upstream failure: network error,
// non-2xx status, timeout or an unparseable body. Callers substitute the
// regional mock dataset; the cause only matters for logging.
var ErrUnavailable = errors.New("flight state provider unavailable")

// StateVector is one raw reported position/identity record for an aircraft.
// HasPosition is false when either coordinate was null upstream; such
// records never contribute to airport counts.
type StateVector struct {
	ICAO24        string
	Callsign      string
	OriginCountry string
	Coord         geo.Coordinates
	HasPosition   bool
	OnGround      bool
}

type httpClient interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// Client fetches live state vectors for a fixed bounding box.
type Client struct {
	baseURL string
	bbox    geo.BoundingBox
	client  httpClient
}

// NewClient creates a client bound to the region's bounding box. A failed
// call degrades to the mock dataset immediately, so the underlying HTTP
// client performs exactly one attempt within the configured timeout.
func NewClient(cfg config.OpenSkyConfig, bbox geo.BoundingBox) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.Timeout

	return &Client{
		baseURL: cfg.BaseURL,
		bbox:    bbox,
		client:  client,
	}
}

// statesResponse mirrors the JSON shape returned by /states/all.
type statesResponse struct {
	Time   int64           `json:"time"`
	States [][]interface{} `json:"states"`
}

// States retrieves the current state vectors inside the client's bounding
// box. Every failure mode is collapsed into ErrUnavailable.
func (c *Client) States(ctx context.Context) ([]StateVector, error) {
	q := url.Values{}
	q.Set("lamin", fmt.Sprintf("%g", c.bbox.LatMin))
	q.Set("lamax", fmt.Sprintf("%g", c.bbox.LatMax))
	q.Set("lomin", fmt.Sprintf("%g", c.bbox.LonMin))
	q.Set("lomax", fmt.Sprintf("%g", c.bbox.LonMax))
	urlStr := fmt.Sprintf("%s/states/all?%s", c.baseURL, q.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}

	var raw statesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing response: %v", ErrUnavailable, err)
	}

	return parseStates(raw), nil
}

// parseStates converts the positional state arrays into StateVector values.
// Field positions per the OpenSky API: 0 icao24, 1 callsign,
// 2 origin_country, 5 longitude, 6 latitude, 8 on_ground.
func parseStates(raw statesResponse) []StateVector {
	states := make([]StateVector, 0, len(raw.States))
	for _, s := range raw.States {
		if len(s) <= 6 {
			continue
		}
		sv := StateVector{
			ICAO24:        stringVal(s[0]),
			Callsign:      stringVal(s[1]),
			OriginCountry: stringVal(s[2]),
		}
		if len(s) > 8 {
			sv.OnGround = boolVal(s[8])
		}
		lon, lonOK := s[5].(float64)
		lat, latOK := s[6].(float64)
		if lonOK && latOK {
			sv.Coord = geo.Coordinates{Lat: lat, Lon: lon}
			sv.HasPosition = true
		}
		states = append(states, sv)
	}
	return states
}

func stringVal(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func boolVal(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
