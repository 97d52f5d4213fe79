package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Worldwide tools backed by the Open-Meteo hosts

func (s *Server) registerGlobalTools() {
	s.mcp.AddTool(mcp.NewTool("get_global_forecast",
		mcp.WithDescription("Get a 7-day weather forecast for any location worldwide."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithNumber("days", mcp.Description("Number of forecast days (1-16, default 7)")),
	), s.handleGetGlobalForecast)

	s.mcp.AddTool(mcp.NewTool("get_global_hourly",
		mcp.WithDescription("Get an hourly weather forecast for any location worldwide (next 24 hours)."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithNumber("hours", mcp.Description("Number of forecast hours (1-168, default 24)")),
	), s.handleGetGlobalHourly)

	s.mcp.AddTool(mcp.NewTool("get_air_quality",
		mcp.WithDescription("Get air quality data for any location worldwide."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetAirQuality)

	s.mcp.AddTool(mcp.NewTool("get_uv_index",
		mcp.WithDescription("Get the current and 3-day max UV index for any location worldwide."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetUVIndex)

	s.mcp.AddTool(mcp.NewTool("get_marine_forecast",
		mcp.WithDescription("Get a marine/ocean forecast for coastal locations worldwide."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location (should be near coast)")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location (should be near coast)")),
	), s.handleGetMarineForecast)
}

func (s *Server) handleGetGlobalForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_global_forecast", err), nil
	}
	days, err := optionalIntArg(req, "days")
	if err != nil {
		return s.toolError("get_global_forecast", err), nil
	}

	forecast, err := s.services.Weather.GetGlobalForecast(ctx, coords, days)
	if err != nil {
		return s.toolError("get_global_forecast", err), nil
	}

	var b strings.Builder
	for _, d := range forecast.Days {
		fmt.Fprintf(&b, "%s: %s, High: %.1f°C, Low: %.1f°C, Precip: %.1fmm, Wind: %.1f km/h\n",
			d.Date, d.Weather.Description, d.High.Celsius, d.Low.Celsius, d.PrecipitationMm, d.MaxWindSpeedKph)
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), forecast)
}

func (s *Server) handleGetGlobalHourly(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_global_hourly", err), nil
	}
	hours, err := optionalIntArg(req, "hours")
	if err != nil {
		return s.toolError("get_global_hourly", err), nil
	}

	hourly, err := s.services.Weather.GetGlobalHourly(ctx, coords, hours)
	if err != nil {
		return s.toolError("get_global_hourly", err), nil
	}

	var b strings.Builder
	for _, h := range hourly.Hours {
		fmt.Fprintf(&b, "%s: %.1f°C, %s, Precip: %.1fmm, Wind: %.1f km/h\n",
			h.Time, h.Temperature.Celsius, h.Weather.Description, h.PrecipitationMm, h.WindSpeedKph)
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), hourly)
}

func (s *Server) handleGetAirQuality(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_air_quality", err), nil
	}

	report, err := s.services.AirQuality.GetAirQuality(ctx, coords)
	if err != nil {
		return s.toolError("get_air_quality", err), nil
	}

	format := func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.1f", *v)
	}

	var b strings.Builder
	if report.AQI != nil {
		fmt.Fprintf(&b, "Air Quality Index (US EPA): %.0f (%s)\n", *report.AQI, report.Level)
	} else {
		b.WriteString("Air Quality Index (US EPA): N/A\n")
	}
	fmt.Fprintf(&b, "PM2.5: %s μg/m³\n", format(report.PM25))
	fmt.Fprintf(&b, "PM10: %s μg/m³\n", format(report.PM10))
	fmt.Fprintf(&b, "Ozone: %s μg/m³\n", format(report.Ozone))
	fmt.Fprintf(&b, "Nitrogen Dioxide: %s μg/m³\n", format(report.NitrogenDioxide))
	fmt.Fprintf(&b, "Carbon Monoxide: %s μg/m³", format(report.CarbonMonoxide))
	return textAndJSON(b.String(), report)
}

func (s *Server) handleGetUVIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_uv_index", err), nil
	}

	report, err := s.services.AirQuality.GetUVIndex(ctx, coords)
	if err != nil {
		return s.toolError("get_uv_index", err), nil
	}

	var b strings.Builder
	if report.Current != nil {
		fmt.Fprintf(&b, "Current UV Index: %.1f (%s)\n", *report.Current, report.CurrentLevel)
	}
	if len(report.Days) > 0 {
		b.WriteString("\nDaily Max UV Index:\n")
		for _, d := range report.Days {
			if d.Max != nil {
				fmt.Fprintf(&b, "  %s: %.1f (%s)\n", d.Date, *d.Max, d.Level)
			} else {
				fmt.Fprintf(&b, "  %s: N/A\n", d.Date)
			}
		}
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), report)
}

func (s *Server) handleGetMarineForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_marine_forecast", err), nil
	}

	conditions, err := s.services.Marine.GetConditions(ctx, coords)
	if err != nil {
		return s.toolError("get_marine_forecast", err), nil
	}

	format := func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.1f", *v)
	}

	var b strings.Builder
	if conditions.Current != nil {
		b.WriteString("Current Conditions:\n")
		fmt.Fprintf(&b, "  Wave Height: %s m\n", format(conditions.Current.WaveHeight))
		fmt.Fprintf(&b, "  Wave Direction: %s°\n", format(conditions.Current.WaveDirection))
		fmt.Fprintf(&b, "  Wave Period: %s s\n", format(conditions.Current.WavePeriod))
	}
	if len(conditions.Daily) > 0 {
		b.WriteString("\nDaily Forecast:\n")
		for _, d := range conditions.Daily {
			fmt.Fprintf(&b, "  %s: Max Wave: %.1fm, Direction: %.0f°, Period: %.1fs\n",
				d.Date, d.WaveHeightMax, d.WaveDirection, d.WavePeriodMax)
		}
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), conditions)
}
