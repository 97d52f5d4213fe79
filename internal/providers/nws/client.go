package nws

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/39.1154,-107.65840
// - https://api.weather.gov/alerts/active/area/CO
const (
	baseURL  = "https://api.weather.gov"
	Upstream = "nws"
)

// geoJSONHeaders satisfies the NWS requirement for an explicit media type
var geoJSONHeaders = map[string]string{"Accept": "application/geo+json"}

type Client struct {
	fetch   *fetch.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(fc *fetch.Client, logger *slog.Logger) *Client {
	return &Client{
		fetch:   fc,
		baseURL: baseURL,
		logger:  logger.With("component", "nws-client"),
	}
}

// GetPoint resolves a coordinate to its forecast grid metadata
func (c *Client) GetPoint(ctx context.Context, latitude, longitude float64) (*PointAPIResponse, error) {
	u := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, latitude, longitude)

	var apiResp PointAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, u, nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetForecast fetches a gridpoint forecast from a URL returned by GetPoint.
// The same shape serves both the daily and the hourly endpoint.
func (c *Client) GetForecast(ctx context.Context, forecastURL string) (*ForecastAPIResponse, error) {
	if forecastURL == "" {
		return nil, &fetch.Error{Upstream: Upstream, Kind: fetch.KindDecode, Err: fmt.Errorf("points response carried no forecast URL")}
	}

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, forecastURL, nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetActiveAlerts fetches active alerts for a US state
func (c *Client) GetActiveAlerts(ctx context.Context, state string) (*AlertsAPIResponse, error) {
	u := fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, url.PathEscape(state))

	var apiResp AlertsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, u, nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetActiveAlertsByEvent fetches active alerts filtered by event names
func (c *Client) GetActiveAlertsByEvent(ctx context.Context, events []string) (*AlertsAPIResponse, error) {
	q := url.Values{}
	q.Set("event", strings.Join(events, ","))

	var apiResp AlertsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/alerts/active", q, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetNationalAlerts fetches all actual active alert messages nationwide
func (c *Client) GetNationalAlerts(ctx context.Context) (*AlertsAPIResponse, error) {
	q := url.Values{}
	q.Set("status", "actual")
	q.Set("message_type", "alert")

	var apiResp AlertsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/alerts/active", q, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetStations fetches observation stations for a US state
func (c *Client) GetStations(ctx context.Context, state string) (*StationsAPIResponse, error) {
	q := url.Values{}
	q.Set("state", state)

	var apiResp StationsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/stations", q, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetObservationStations fetches the station list from a URL returned by GetPoint
func (c *Client) GetObservationStations(ctx context.Context, stationsURL string) (*StationsAPIResponse, error) {
	if stationsURL == "" {
		return nil, &fetch.Error{Upstream: Upstream, Kind: fetch.KindDecode, Err: fmt.Errorf("points response carried no observation stations URL")}
	}

	var apiResp StationsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, stationsURL, nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetLatestObservation fetches the most recent observation for a station
func (c *Client) GetLatestObservation(ctx context.Context, stationID string) (*ObservationAPIResponse, error) {
	u := fmt.Sprintf("%s/stations/%s/observations/latest", c.baseURL, url.PathEscape(stationID))

	var apiResp ObservationAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, u, nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetRadarStations fetches the national radar station list
func (c *Client) GetRadarStations(ctx context.Context) (*RadarStationsAPIResponse, error) {
	var apiResp RadarStationsAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/radar/stations", nil, geoJSONHeaders, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}
