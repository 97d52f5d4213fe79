package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/datavtar/mcp-cloud-server/internal/airquality"
	"github.com/datavtar/mcp-cloud-server/internal/alerts"
	"github.com/datavtar/mcp-cloud-server/internal/astro"
	"github.com/datavtar/mcp-cloud-server/internal/config"
	"github.com/datavtar/mcp-cloud-server/internal/fetch"
	"github.com/datavtar/mcp-cloud-server/internal/location"
	"github.com/datavtar/mcp-cloud-server/internal/marine"
	"github.com/datavtar/mcp-cloud-server/internal/types"
	"github.com/datavtar/mcp-cloud-server/internal/weather"
)

// Stub services returning canned values; each method can be overridden
// per test.

type stubWeather struct {
	forecast   *weather.Forecast
	global     *weather.GlobalForecast
	hourly     *weather.GlobalHourly
	comparison *weather.Comparison
	summary    *weather.Summary
	conditions *weather.CurrentConditions
	stations   []weather.Station
	err        error
	calls      int
}

func (s *stubWeather) GetForecast(ctx context.Context, coords types.Coords) (*weather.Forecast, error) {
	return s.forecast, s.err
}

func (s *stubWeather) GetHourlyForecast(ctx context.Context, coords types.Coords) (*weather.Forecast, error) {
	return s.forecast, s.err
}

func (s *stubWeather) GetCurrentConditions(ctx context.Context, coords types.Coords) (*weather.CurrentConditions, error) {
	return s.conditions, s.err
}

func (s *stubWeather) GetGlobalForecast(ctx context.Context, coords types.Coords, days int) (*weather.GlobalForecast, error) {
	s.calls++
	return s.global, s.err
}

func (s *stubWeather) GetGlobalHourly(ctx context.Context, coords types.Coords, hours int) (*weather.GlobalHourly, error) {
	return s.hourly, s.err
}

func (s *stubWeather) CompareWeather(ctx context.Context, labelA string, coordsA types.Coords, labelB string, coordsB types.Coords) (*weather.Comparison, error) {
	return s.comparison, s.err
}

func (s *stubWeather) GetSummary(ctx context.Context, coords types.Coords) (*weather.Summary, error) {
	return s.summary, s.err
}

func (s *stubWeather) GetStations(ctx context.Context, state string) ([]weather.Station, error) {
	return s.stations, s.err
}

func (s *stubWeather) GetRadarStations(ctx context.Context) ([]weather.Station, error) {
	return s.stations, s.err
}

type stubAlerts struct {
	state      *alerts.StateAlerts
	hurricanes []alerts.Alert
	national   *alerts.NationalSummary
	err        error
}

func (s *stubAlerts) GetActiveAlerts(ctx context.Context, state string) (*alerts.StateAlerts, error) {
	return s.state, s.err
}

func (s *stubAlerts) GetActiveHurricanes(ctx context.Context) ([]alerts.Alert, error) {
	return s.hurricanes, s.err
}

func (s *stubAlerts) GetNationalSummary(ctx context.Context) (*alerts.NationalSummary, error) {
	return s.national, s.err
}

type stubLocation struct {
	places []location.Place
	place  *location.Place
	err    error
}

func (s *stubLocation) Geocode(ctx context.Context, query string) ([]location.Place, error) {
	return s.places, s.err
}

func (s *stubLocation) ReverseGeocode(ctx context.Context, coords types.Coords) (*location.Place, error) {
	return s.place, s.err
}

func (s *stubLocation) ResolvePlace(ctx context.Context, query string) (*location.Place, error) {
	return s.place, s.err
}

type stubAirQuality struct {
	report *airquality.Report
	uv     *airquality.UVReport
	err    error
}

func (s *stubAirQuality) GetAirQuality(ctx context.Context, coords types.Coords) (*airquality.Report, error) {
	return s.report, s.err
}

func (s *stubAirQuality) GetUVIndex(ctx context.Context, coords types.Coords) (*airquality.UVReport, error) {
	return s.uv, s.err
}

type stubMarine struct {
	conditions *marine.Conditions
	err        error
}

func (s *stubMarine) GetConditions(ctx context.Context, coords types.Coords) (*marine.Conditions, error) {
	return s.conditions, s.err
}

type stubAstro struct {
	times *astro.SunTimes
	err   error
}

func (s *stubAstro) GetSunTimes(ctx context.Context, coords types.Coords, date string) (*astro.SunTimes, error) {
	return s.times, s.err
}

func newTestServer(services Services) *Server {
	cfg := &config.Config{
		App: config.AppConfig{ForecastPeriods: 5, HourlyPeriods: 24, StationLimit: 50},
	}
	return New(services, cfg, slog.New(slog.DiscardHandler))
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult, index int) string {
	t.Helper()
	if index >= len(result.Content) {
		t.Fatalf("expected at least %d content parts, got %d", index+1, len(result.Content))
	}
	text, ok := result.Content[index].(mcp.TextContent)
	if !ok {
		t.Fatalf("content %d is not text: %T", index, result.Content[index])
	}
	return text.Text
}

func TestToolErrorMapping(t *testing.T) {
	t.Run("validation errors carry the validation prefix", func(t *testing.T) {
		srv := newTestServer(Services{
			Alerts: &stubAlerts{err: alerts.ErrInvalidState},
		})

		result, err := srv.handleGetAlerts(context.Background(), callRequest("get_alerts", map[string]any{"state": "ZZ"}))
		if err != nil {
			t.Fatalf("unexpected protocol error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected an error result")
		}
		if got := resultText(t, result, 0); !strings.HasPrefix(got, "validation error:") {
			t.Errorf("expected validation prefix, got %q", got)
		}
	})

	t.Run("upstream errors name the upstream", func(t *testing.T) {
		srv := newTestServer(Services{
			Alerts: &stubAlerts{err: &fetch.Error{Upstream: "nws", Kind: fetch.KindHTTP, Status: 503}},
		})

		result, err := srv.handleGetAlerts(context.Background(), callRequest("get_alerts", map[string]any{"state": "CA"}))
		if err != nil {
			t.Fatalf("unexpected protocol error: %v", err)
		}
		if got := resultText(t, result, 0); !strings.HasPrefix(got, "upstream error (nws):") {
			t.Errorf("expected upstream prefix, got %q", got)
		}
	})

	t.Run("fractional integer parameters are rejected before the service runs", func(t *testing.T) {
		stub := &stubWeather{}
		srv := newTestServer(Services{Weather: stub})

		result, err := srv.handleGetGlobalForecast(context.Background(), callRequest("get_global_forecast", map[string]any{
			"latitude": 39.7, "longitude": -104.9, "days": 3.7,
		}))
		if err != nil {
			t.Fatalf("unexpected protocol error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected an error result")
		}
		if got := resultText(t, result, 0); !strings.Contains(got, `parameter "days" must be an integer`) {
			t.Errorf("unexpected message: %q", got)
		}
		if stub.calls != 0 {
			t.Errorf("expected no service calls, got %d", stub.calls)
		}
	})

	t.Run("missing required parameters are validation errors", func(t *testing.T) {
		srv := newTestServer(Services{Alerts: &stubAlerts{}})

		result, err := srv.handleGetAlerts(context.Background(), callRequest("get_alerts", map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected protocol error: %v", err)
		}
		if got := resultText(t, result, 0); !strings.Contains(got, `missing required parameter "state"`) {
			t.Errorf("unexpected message: %q", got)
		}
	})
}

func TestGetAlertsTool(t *testing.T) {
	t.Run("empty alerts render as a legitimate empty answer", func(t *testing.T) {
		srv := newTestServer(Services{
			Alerts: &stubAlerts{state: &alerts.StateAlerts{State: "CO", Alerts: []alerts.Alert{}}},
		})

		result, err := srv.handleGetAlerts(context.Background(), callRequest("get_alerts", map[string]any{"state": "CO"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("expected success, got error: %s", resultText(t, result, 0))
		}
		if got := resultText(t, result, 0); got != "No active alerts for CO." {
			t.Errorf("unexpected text: %q", got)
		}
	})

	t.Run("alerts carry a JSON content part with the canonical records", func(t *testing.T) {
		srv := newTestServer(Services{
			Alerts: &stubAlerts{state: &alerts.StateAlerts{
				State: "CA",
				Alerts: []alerts.Alert{
					{Event: "Red Flag Warning", AreaDesc: "Sacramento Valley", Severity: "Severe"},
				},
			}},
		})

		result, err := srv.handleGetAlerts(context.Background(), callRequest("get_alerts", map[string]any{"state": "CA"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rendered := resultText(t, result, 0)
		if !strings.Contains(rendered, "Event: Red Flag Warning") {
			t.Errorf("expected rendered alert, got %q", rendered)
		}

		var decoded alerts.StateAlerts
		if err := json.Unmarshal([]byte(resultText(t, result, 1)), &decoded); err != nil {
			t.Fatalf("second content part is not valid JSON: %v", err)
		}
		if decoded.State != "CA" || len(decoded.Alerts) != 1 {
			t.Errorf("unexpected decoded payload: %+v", decoded)
		}
	})
}

func TestCompareWeatherTool(t *testing.T) {
	tempA := types.NewTemperatureFromCelsius(20)
	tempB := types.NewTemperatureFromCelsius(15)
	delta := 5.0

	srv := newTestServer(Services{
		Weather: &stubWeather{comparison: &weather.Comparison{
			LabelA:           "Location 1 (60.0000, 10.0000)",
			LabelB:           "Location 2 (-33.0000, 151.0000)",
			A:                &weather.Snapshot{Temperature: &tempA},
			B:                &weather.Snapshot{Temperature: &tempB},
			TemperatureDelta: &delta,
		}},
	})

	result, err := srv.handleCompareWeather(context.Background(), callRequest("compare_weather", map[string]any{
		"lat1": 60.0, "lon1": 10.0, "lat2": -33.0, "lon2": 151.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result, 0))
	}
	if got := resultText(t, result, 0); !strings.Contains(got, "Location 1 is 5.0°C warmer than Location 2") {
		t.Errorf("expected delta line, got %q", got)
	}
}

func TestGetWeatherForPlaceTool(t *testing.T) {
	place := &location.Place{
		DisplayName: "Kyoto, Japan",
		Coordinates: types.Coords{Latitude: 35.0116, Longitude: 135.7681},
	}
	global := &weather.GlobalForecast{
		Coordinates: place.Coordinates,
		Timezone:    "Asia/Tokyo",
		Days: []weather.GlobalDay{
			{Date: "2025-06-21", High: types.NewTemperatureFromCelsius(28), Low: types.NewTemperatureFromCelsius(20), Weather: types.NewWeather(2)},
		},
	}

	srv := newTestServer(Services{
		Location: &stubLocation{place: place},
		Weather:  &stubWeather{global: global},
	})

	result, err := srv.handleGetWeatherForPlace(context.Background(), callRequest("get_weather_for_place", map[string]any{"query": "Kyoto"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result, 0))
	}
	if got := resultText(t, result, 0); !strings.Contains(got, "Forecast for Kyoto, Japan") {
		t.Errorf("expected forecast header, got %q", got)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	srv := newTestServer(Services{
		Location: &stubLocation{places: []location.Place{}},
	})

	result, err := srv.handleGeocodeLocation(context.Background(), callRequest("geocode_location", map[string]any{"query": "xyzzyplugh"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("no results should not be an error result")
	}
	if got := resultText(t, result, 0); !strings.Contains(got, `No results found for "xyzzyplugh"`) {
		t.Errorf("unexpected text: %q", got)
	}

	var decoded []location.Place
	if err := json.Unmarshal([]byte(resultText(t, result, 1)), &decoded); err != nil {
		t.Fatalf("second content part is not valid JSON: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected an empty candidate list, got %d", len(decoded))
	}
}

func TestStationsResource(t *testing.T) {
	srv := newTestServer(Services{
		Weather: &stubWeather{stations: []weather.Station{
			{ID: "KBJC", Name: "Rocky Mountain Metropolitan Airport", Coordinates: types.Coords{Latitude: 39.9088, Longitude: -105.1172}},
		}},
	})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "weather://stations/CO"

	contents, err := srv.handleStationsResource(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text contents, got %T", contents[0])
	}
	if !strings.Contains(text.Text, "KBJC") || !strings.Contains(text.Text, "Weather Stations in CO") {
		t.Errorf("unexpected resource text: %q", text.Text)
	}
}

func TestNationalAlertsResource(t *testing.T) {
	srv := newTestServer(Services{
		Alerts: &stubAlerts{national: &alerts.NationalSummary{
			Total:    3,
			ByEvent:  map[string]int{"Flood Warning": 2, "Heat Advisory": 1},
			TopEvent: "Flood Warning",
		}},
	})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "weather://alerts/national"

	contents, err := srv.handleNationalAlertsResource(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := contents[0].(mcp.TextResourceContents).Text
	if !strings.Contains(text, "Total Active Alerts: 3") {
		t.Errorf("unexpected resource text: %q", text)
	}
	// Sorted by count descending
	if strings.Index(text, "Flood Warning") > strings.Index(text, "Heat Advisory") {
		t.Errorf("expected Flood Warning listed first:\n%s", text)
	}
}

func TestPrompts(t *testing.T) {
	srv := newTestServer(Services{})

	t.Run("travel_weather interpolates both locations", func(t *testing.T) {
		req := mcp.GetPromptRequest{}
		req.Params.Name = "travel_weather"
		req.Params.Arguments = map[string]string{"origin": "Denver", "destination": "Seattle"}

		result, err := srv.handleTravelWeatherPrompt(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, ok := result.Messages[0].Content.(mcp.TextContent)
		if !ok {
			t.Fatalf("expected text content, got %T", result.Messages[0].Content)
		}
		if !strings.Contains(text.Text, "from Denver to Seattle") {
			t.Errorf("expected interpolated locations, got %q", text.Text)
		}
	})

	t.Run("severe_weather_summary uppercases the state", func(t *testing.T) {
		req := mcp.GetPromptRequest{}
		req.Params.Name = "severe_weather_summary"
		req.Params.Arguments = map[string]string{"state": "ca"}

		result, err := srv.handleSevereWeatherPrompt(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := result.Messages[0].Content.(mcp.TextContent)
		if !strings.Contains(text.Text, "severe weather analysis for CA") {
			t.Errorf("expected uppercase state, got %q", text.Text)
		}
	})

	t.Run("missing arguments fail", func(t *testing.T) {
		req := mcp.GetPromptRequest{}
		req.Params.Name = "outdoor_activity"
		req.Params.Arguments = map[string]string{"latitude": "39.7", "longitude": "-104.9"}

		if _, err := srv.handleOutdoorActivityPrompt(context.Background(), req); err == nil {
			t.Error("expected an error for the missing activity argument")
		}
	})
}
