package sunrisesunset

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
)

// API Docs: https://sunrise-sunset.org/api
// Sample request: https://api.sunrise-sunset.org/json?lat=39.11&lng=-107.65&formatted=0
const (
	baseURL  = "https://api.sunrise-sunset.org"
	Upstream = "sunrise-sunset"
)

// TimesAPIResponse is the /json response. With formatted=0 all times are
// ISO 8601 in UTC and day_length is seconds.
type TimesAPIResponse struct {
	Status  string `json:"status"`
	Results struct {
		Sunrise            string `json:"sunrise"`
		Sunset             string `json:"sunset"`
		SolarNoon          string `json:"solar_noon"`
		DayLength          int    `json:"day_length"`
		CivilTwilightBegin string `json:"civil_twilight_begin"`
		CivilTwilightEnd   string `json:"civil_twilight_end"`
	} `json:"results"`
}

type Client struct {
	fetch   *fetch.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(fc *fetch.Client, logger *slog.Logger) *Client {
	return &Client{
		fetch:   fc,
		baseURL: baseURL,
		logger:  logger.With("component", "sunrise-sunset-client"),
	}
}

// GetTimes fetches sun times for a coordinate. An empty date means today;
// otherwise date is YYYY-MM-DD.
func (c *Client) GetTimes(ctx context.Context, latitude, longitude float64, date string) (*TimesAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lng", fmt.Sprintf("%f", longitude))
	q.Set("formatted", "0")
	if date != "" {
		q.Set("date", date)
	}

	var apiResp TimesAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/json", q, nil, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != "OK" {
		return nil, &fetch.Error{Upstream: Upstream, Kind: fetch.KindDecode, Err: fmt.Errorf("upstream status %q", apiResp.Status)}
	}

	return &apiResp, nil
}
