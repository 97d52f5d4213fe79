package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/datavtar/mcp-cloud-server/internal/alerts"
)

// US-only tools backed by api.weather.gov

func (s *Server) registerNWSTools() {
	s.mcp.AddTool(mcp.NewTool("get_alerts",
		mcp.WithDescription("Get active weather alerts for a US state."),
		mcp.WithString("state",
			mcp.Required(),
			mcp.Description("Two-letter US state code (e.g. CA, NY)"),
		),
	), s.handleGetAlerts)

	s.mcp.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Get the weather forecast for a US location. Returns the next named forecast periods from the National Weather Service."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetForecast)

	s.mcp.AddTool(mcp.NewTool("get_hourly_forecast",
		mcp.WithDescription("Get the hourly weather forecast for a US location (next 24 hours)."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetHourlyForecast)

	s.mcp.AddTool(mcp.NewTool("get_current_conditions",
		mcp.WithDescription("Get current weather conditions from the observation station nearest a US location."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetCurrentConditions)

	s.mcp.AddTool(mcp.NewTool("get_radar_stations",
		mcp.WithDescription("Get nearby radar stations for a US location."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetRadarStations)

	s.mcp.AddTool(mcp.NewTool("get_active_hurricanes",
		mcp.WithDescription("Get active tropical storms and hurricanes in the US."),
	), s.handleGetActiveHurricanes)
}

func (s *Server) handleGetAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := stringArg(req, "state")
	if err != nil {
		return s.toolError("get_alerts", err), nil
	}

	stateAlerts, err := s.services.Alerts.GetActiveAlerts(ctx, state)
	if err != nil {
		return s.toolError("get_alerts", err), nil
	}

	if len(stateAlerts.Alerts) == 0 {
		return textAndJSON(fmt.Sprintf("No active alerts for %s.", stateAlerts.State), stateAlerts)
	}

	rendered := make([]string, 0, len(stateAlerts.Alerts))
	for _, a := range stateAlerts.Alerts {
		rendered = append(rendered, a.Render())
	}
	return textAndJSON(strings.Join(rendered, "\n---\n"), stateAlerts)
}

func (s *Server) handleGetForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_forecast", err), nil
	}

	forecast, err := s.services.Weather.GetForecast(ctx, coords)
	if err != nil {
		return s.toolError("get_forecast", err), nil
	}
	return textAndJSON(forecast.Render(), forecast)
}

func (s *Server) handleGetHourlyForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_hourly_forecast", err), nil
	}

	forecast, err := s.services.Weather.GetHourlyForecast(ctx, coords)
	if err != nil {
		return s.toolError("get_hourly_forecast", err), nil
	}

	var b strings.Builder
	for _, p := range forecast.Periods {
		fmt.Fprintf(&b, "%s: %.0f°F, %s, Wind %s %s\n",
			p.Start, p.Temperature.Fahrenheit, p.ShortForecast, p.WindSpeed, p.WindDirection)
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), forecast)
}

func (s *Server) handleGetCurrentConditions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_current_conditions", err), nil
	}

	conditions, err := s.services.Weather.GetCurrentConditions(ctx, coords)
	if err != nil {
		return s.toolError("get_current_conditions", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current conditions at %s", conditions.StationID)
	if conditions.StationName != "" {
		fmt.Fprintf(&b, " (%s)", conditions.StationName)
	}
	b.WriteString(":\n")
	if conditions.Description != "" {
		fmt.Fprintf(&b, "Conditions: %s\n", conditions.Description)
	}
	if conditions.Temperature != nil {
		fmt.Fprintf(&b, "Temperature: %.1f°F (%.1f°C)\n", conditions.Temperature.Fahrenheit, conditions.Temperature.Celsius)
	}
	if conditions.RelativeHumidity != nil {
		fmt.Fprintf(&b, "Humidity: %.1f%%\n", *conditions.RelativeHumidity)
	}
	if conditions.Wind != nil {
		fmt.Fprintf(&b, "Wind: %.1f mph from %s\n", conditions.Wind.SpeedInMph, conditions.Wind.DirectionCardinal)
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), conditions)
}

func (s *Server) handleGetRadarStations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_radar_stations", err), nil
	}
	if err := coords.Validate(); err != nil {
		return s.toolError("get_radar_stations", err), nil
	}

	stations, err := s.services.Weather.GetRadarStations(ctx)
	if err != nil {
		return s.toolError("get_radar_stations", err), nil
	}

	// The national list is long; show the first ten
	display := stations
	if len(display) > 10 {
		display = display[:10]
	}

	var b strings.Builder
	b.WriteString("Radar Stations:\n")
	for _, st := range display {
		fmt.Fprintf(&b, "%s: %s (%.2f, %.2f)\n", st.ID, st.Name, st.Coordinates.Latitude, st.Coordinates.Longitude)
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), display)
}

func (s *Server) handleGetActiveHurricanes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := s.services.Alerts.GetActiveHurricanes(ctx)
	if err != nil {
		return s.toolError("get_active_hurricanes", err), nil
	}

	if len(active) == 0 {
		return textAndJSON("No active hurricane or tropical storm alerts.", []alerts.Alert{})
	}

	rendered := make([]string, 0, len(active))
	for _, a := range active {
		rendered = append(rendered, a.Render())
	}
	return textAndJSON(strings.Join(rendered, "\n---\n"), active)
}
