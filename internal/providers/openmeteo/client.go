package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=39.11&longitude=-107.65&daily=temperature_2m_max,temperature_2m_min&timezone=auto
const (
	baseForecastURL   = "https://api.open-meteo.com/v1/forecast"
	baseAirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
	baseMarineURL     = "https://marine-api.open-meteo.com/v1/marine"

	Upstream           = "open-meteo"
	UpstreamAirQuality = "open-meteo-air-quality"
	UpstreamMarine     = "open-meteo-marine"
)

type Client struct {
	fetch         *fetch.Client
	forecastURL   string
	airQualityURL string
	marineURL     string
	logger        *slog.Logger
}

func NewClient(fc *fetch.Client, logger *slog.Logger) *Client {
	return &Client{
		fetch:         fc,
		forecastURL:   baseForecastURL,
		airQualityURL: baseAirQualityURL,
		marineURL:     baseMarineURL,
		logger:        logger.With("component", "openmeteo-client"),
	}
}

func coordQuery(latitude, longitude float64) url.Values {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	return q
}

// GetDailyForecast fetches a daily forecast in the location's local timezone
func (c *Client) GetDailyForecast(ctx context.Context, latitude, longitude float64, days int) (*ForecastAPIResponse, error) {
	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"weathercode",
		"windspeed_10m_max",
	}

	q := coordQuery(latitude, longitude)
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(days))

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.forecastURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetHourlyForecast fetches an hourly forecast for the next hours hours
func (c *Client) GetHourlyForecast(ctx context.Context, latitude, longitude float64, hours int) (*ForecastAPIResponse, error) {
	hourlyVars := []string{
		"temperature_2m",
		"precipitation",
		"weathercode",
		"windspeed_10m",
	}

	q := coordQuery(latitude, longitude)
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_hours", strconv.Itoa(hours))

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.forecastURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetCurrentWeather fetches a current-conditions snapshot
func (c *Client) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"precipitation",
		"weathercode",
		"windspeed_10m",
		"winddirection_10m",
		"uv_index",
	}

	q := coordQuery(latitude, longitude)
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("timezone", "auto")

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.forecastURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetSummary fetches current conditions plus a short daily outlook in one call
func (c *Client) GetSummary(ctx context.Context, latitude, longitude float64, days int) (*ForecastAPIResponse, error) {
	q := coordQuery(latitude, longitude)
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weathercode,windspeed_10m,uv_index")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(days))

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.forecastURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetUVIndex fetches current plus daily-max UV index for the next days days
func (c *Client) GetUVIndex(ctx context.Context, latitude, longitude float64, days int) (*ForecastAPIResponse, error) {
	q := coordQuery(latitude, longitude)
	q.Set("daily", "uv_index_max,uv_index_clear_sky_max")
	q.Set("current", "uv_index")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(days))

	var apiResp ForecastAPIResponse
	if err := c.fetch.GetJSON(ctx, Upstream, c.forecastURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetAirQuality fetches current air quality from the air-quality host
func (c *Client) GetAirQuality(ctx context.Context, latitude, longitude float64) (*AirQualityAPIResponse, error) {
	q := coordQuery(latitude, longitude)
	q.Set("current", "us_aqi,pm10,pm2_5,carbon_monoxide,nitrogen_dioxide,ozone")

	var apiResp AirQualityAPIResponse
	if err := c.fetch.GetJSON(ctx, UpstreamAirQuality, c.airQualityURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetMarine fetches current and daily wave conditions from the marine host
func (c *Client) GetMarine(ctx context.Context, latitude, longitude float64) (*MarineAPIResponse, error) {
	q := coordQuery(latitude, longitude)
	q.Set("current", "wave_height,wave_direction,wave_period")
	q.Set("daily", "wave_height_max,wave_direction_dominant,wave_period_max,wind_wave_height_max,swell_wave_height_max")
	q.Set("timezone", "auto")

	var apiResp MarineAPIResponse
	if err := c.fetch.GetJSON(ctx, UpstreamMarine, c.marineURL, q, nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}
