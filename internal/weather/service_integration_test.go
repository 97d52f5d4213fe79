//go:build integration

package weather

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/datavtar/mcp-cloud-server/internal/config"
	"github.com/datavtar/mcp-cloud-server/internal/fetch"
	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

func newIntegrationService(t *testing.T) Service {
	t.Helper()

	logger := slog.Default()
	fc := fetch.NewClient(15*time.Second, "mcp-cloud-server-tests/1.0", logger)
	cfg := &config.Config{
		App: config.AppConfig{ForecastPeriods: 5, HourlyPeriods: 24, StationLimit: 50},
	}
	return NewService(nws.NewClient(fc, logger), openmeteo.NewClient(fc, logger), nil, cfg, logger)
}

func TestService_GetForecast_Integration(t *testing.T) {
	svc := newIntegrationService(t)

	// Denver, CO
	forecast, err := svc.GetForecast(context.Background(), types.Coords{Latitude: 39.7392, Longitude: -104.9903})
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	if len(forecast.Periods) == 0 {
		t.Fatal("Expected at least one forecast period")
	}
	t.Logf("Location: %s, %s (%s)", forecast.Location.Name, forecast.Location.State, forecast.GridID)
	for _, p := range forecast.Periods {
		t.Logf("  %s: %.0f°F, %s", p.Name, p.Temperature.Fahrenheit, p.ShortForecast)
	}
}

func TestService_GetGlobalForecast_Integration(t *testing.T) {
	svc := newIntegrationService(t)

	// Tokyo
	forecast, err := svc.GetGlobalForecast(context.Background(), types.Coords{Latitude: 35.6762, Longitude: 139.6503}, 3)
	if err != nil {
		t.Fatalf("Failed to get global forecast: %v", err)
	}

	if len(forecast.Days) != 3 {
		t.Errorf("Expected 3 days, got %d", len(forecast.Days))
	}
	t.Logf("Timezone: %s", forecast.Timezone)
	for _, d := range forecast.Days {
		t.Logf("  %s: %.1f°C / %.1f°C, %s", d.Date, d.High.Celsius, d.Low.Celsius, d.Weather.Description)
	}
}

func TestService_CompareWeather_Integration(t *testing.T) {
	svc := newIntegrationService(t)

	comparison, err := svc.CompareWeather(
		context.Background(),
		"London", types.Coords{Latitude: 51.5074, Longitude: -0.1278},
		"Sydney", types.Coords{Latitude: -33.8688, Longitude: 151.2093},
	)
	if err != nil {
		t.Fatalf("Failed to compare weather: %v", err)
	}

	if comparison.A == nil || comparison.B == nil {
		t.Fatal("Expected both snapshots")
	}
	if comparison.TemperatureDelta != nil {
		t.Logf("London minus Sydney: %.1f°C", *comparison.TemperatureDelta)
	}
}
