//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
)

func newIntegrationClient() *Client {
	logger := slog.Default()
	fc := fetch.NewClient(10*time.Second, "mcp-cloud-server-tests/1.0", logger)
	return NewClient(fc, logger)
}

func TestClient_GetDailyForecast_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	client := newIntegrationClient()

	t.Logf("Making API call to Open-Meteo forecast API...")
	resp, err := client.GetDailyForecast(context.Background(), lat, lon, 7)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	if resp.Daily == nil || len(resp.Daily.Time) == 0 {
		t.Fatal("Expected a populated daily block")
	}
	if len(resp.Daily.TemperatureMax) != len(resp.Daily.Time) {
		t.Errorf("temperature_2m_max length %d != time length %d",
			len(resp.Daily.TemperatureMax), len(resp.Daily.Time))
	}

	rawJSON, err := json.MarshalIndent(resp.Daily, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Daily block: %s", string(rawJSON))
}

func TestClient_GetAirQuality_Integration(t *testing.T) {
	client := newIntegrationClient()

	resp, err := client.GetAirQuality(context.Background(), 39.11539, -107.65840)
	if err != nil {
		t.Fatalf("Failed to get air quality: %v", err)
	}

	if resp.Current == nil {
		t.Fatal("Expected a current air-quality block")
	}
	if resp.Current.USAQI != nil {
		t.Logf("US AQI: %.0f", *resp.Current.USAQI)
	}
}
