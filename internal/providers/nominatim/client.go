package nominatim

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Aspen&format=json
const (
	baseURL  = "https://nominatim.openstreetmap.org"
	Upstream = "nominatim"
)

type Client struct {
	fetch   *fetch.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(fc *fetch.Client, logger *slog.Logger) *Client {
	return &Client{
		fetch:   fc,
		baseURL: baseURL,
		logger:  logger.With("component", "nominatim-client"),
	}
}

// Search geocodes a free-text query into ranked place candidates.
// An empty slice is a valid answer for an unresolvable query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]PlaceAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("format", "json")
	q.Set("addressdetails", "1")

	var apiResp []PlaceAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/search", q, nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp, nil
}

// Reverse resolves a coordinate to the place covering it
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*PlaceAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")

	var apiResp PlaceAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.baseURL+"/reverse", q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}
