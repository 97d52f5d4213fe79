package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/datavtar/mcp-cloud-server/internal/location"
	"github.com/datavtar/mcp-cloud-server/internal/types"
	"github.com/datavtar/mcp-cloud-server/internal/weather"
)

// Geocoding and composite tools

func (s *Server) registerLocationTools() {
	s.mcp.AddTool(mcp.NewTool("geocode_location",
		mcp.WithDescription("Convert a place name or address to coordinates."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description(`Place name, address, or location to search for (e.g. "Paris, France")`),
		),
	), s.handleGeocodeLocation)

	s.mcp.AddTool(mcp.NewTool("reverse_geocode",
		mcp.WithDescription("Convert coordinates to a place name/address."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleReverseGeocode)

	s.mcp.AddTool(mcp.NewTool("get_sunrise_sunset",
		mcp.WithDescription("Get sunrise and sunset times for a location."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithString("date", mcp.Description(`Date in YYYY-MM-DD format or "today" (default: today)`)),
	), s.handleGetSunriseSunset)

	s.mcp.AddTool(mcp.NewTool("compare_weather",
		mcp.WithDescription("Compare current weather between two locations."),
		mcp.WithNumber("lat1", mcp.Required(), mcp.Description("Latitude of first location")),
		mcp.WithNumber("lon1", mcp.Required(), mcp.Description("Longitude of first location")),
		mcp.WithNumber("lat2", mcp.Required(), mcp.Description("Latitude of second location")),
		mcp.WithNumber("lon2", mcp.Required(), mcp.Description("Longitude of second location")),
	), s.handleCompareWeather)

	s.mcp.AddTool(mcp.NewTool("get_weather_summary",
		mcp.WithDescription("Get a comprehensive weather summary including current conditions, forecast, and air quality."),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
	), s.handleGetWeatherSummary)

	s.mcp.AddTool(mcp.NewTool("get_weather_for_place",
		mcp.WithDescription("Get the weather forecast for a named place anywhere in the world. Geocodes the place, then fetches its forecast."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description(`Place name or address (e.g. "Kyoto, Japan")`),
		),
	), s.handleGetWeatherForPlace)
}

func (s *Server) handleGeocodeLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := stringArg(req, "query")
	if err != nil {
		return s.toolError("geocode_location", err), nil
	}

	places, err := s.services.Location.Geocode(ctx, query)
	if err != nil {
		return s.toolError("geocode_location", err), nil
	}
	if len(places) == 0 {
		return textAndJSON(fmt.Sprintf("No results found for %q. Try a more specific query.", query), []location.Place{})
	}

	rendered := make([]string, 0, len(places))
	for _, p := range places {
		rendered = append(rendered, fmt.Sprintf("%s\n   Coordinates: %.6f, %.6f\n   Type: %s",
			p.DisplayName, p.Coordinates.Latitude, p.Coordinates.Longitude, p.Type))
	}
	return textAndJSON(strings.Join(rendered, "\n\n"), places)
}

func (s *Server) handleReverseGeocode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("reverse_geocode", err), nil
	}

	place, err := s.services.Location.ReverseGeocode(ctx, coords)
	if err != nil {
		if errors.Is(err, location.ErrNoResults) {
			return textAndJSON(fmt.Sprintf("No place found at (%.4f, %.4f).", coords.Latitude, coords.Longitude), nil)
		}
		return s.toolError("reverse_geocode", err), nil
	}

	var b strings.Builder
	b.WriteString(place.DisplayName)
	addr := place.Address
	if addr.Name != "" || addr.County != "" || addr.State != "" || addr.Country != "" {
		b.WriteString("\n\nAddress components:")
		if addr.Name != "" {
			fmt.Fprintf(&b, "\n  Name: %s", addr.Name)
		}
		if addr.County != "" {
			fmt.Fprintf(&b, "\n  County: %s", addr.County)
		}
		if addr.State != "" {
			fmt.Fprintf(&b, "\n  State: %s", addr.State)
		}
		if addr.Country != "" {
			fmt.Fprintf(&b, "\n  Country: %s", addr.Country)
		}
	}
	return textAndJSON(b.String(), place)
}

func (s *Server) handleGetSunriseSunset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_sunrise_sunset", err), nil
	}
	date := optionalStringArg(req, "date")

	times, err := s.services.Astro.GetSunTimes(ctx, coords, date)
	if err != nil {
		return s.toolError("get_sunrise_sunset", err), nil
	}

	const layout = "15:04:05 MST"
	var b strings.Builder
	fmt.Fprintf(&b, "Sun times for %s (%s):\n", times.Date, times.Timezone)
	fmt.Fprintf(&b, "Sunrise: %s\n", times.Sunrise.Format(layout))
	fmt.Fprintf(&b, "Sunset: %s\n", times.Sunset.Format(layout))
	fmt.Fprintf(&b, "Solar Noon: %s\n", times.SolarNoon.Format(layout))
	fmt.Fprintf(&b, "Day Length: %d seconds (%s)\n", times.DayLengthSeconds, times.DayLength())
	fmt.Fprintf(&b, "Civil Twilight Begin: %s\n", times.CivilTwilightBegin.Format(layout))
	fmt.Fprintf(&b, "Civil Twilight End: %s", times.CivilTwilightEnd.Format(layout))
	return textAndJSON(b.String(), times)
}

func (s *Server) handleCompareWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat1, err := floatArg(req, "lat1")
	if err != nil {
		return s.toolError("compare_weather", err), nil
	}
	lon1, err := floatArg(req, "lon1")
	if err != nil {
		return s.toolError("compare_weather", err), nil
	}
	lat2, err := floatArg(req, "lat2")
	if err != nil {
		return s.toolError("compare_weather", err), nil
	}
	lon2, err := floatArg(req, "lon2")
	if err != nil {
		return s.toolError("compare_weather", err), nil
	}

	labelA := fmt.Sprintf("Location 1 (%.4f, %.4f)", lat1, lon1)
	labelB := fmt.Sprintf("Location 2 (%.4f, %.4f)", lat2, lon2)

	comparison, err := s.services.Weather.CompareWeather(ctx,
		labelA, types.NewCoords(lat1, lon1),
		labelB, types.NewCoords(lat2, lon2),
	)
	if err != nil {
		return s.toolError("compare_weather", err), nil
	}

	var b strings.Builder
	b.WriteString(renderSnapshot(comparison.LabelA, comparison.A))
	b.WriteString("\n")
	b.WriteString(renderSnapshot(comparison.LabelB, comparison.B))
	if comparison.TemperatureDelta != nil {
		delta := *comparison.TemperatureDelta
		switch {
		case delta > 0:
			fmt.Fprintf(&b, "\nLocation 1 is %.1f°C warmer than Location 2", delta)
		case delta < 0:
			fmt.Fprintf(&b, "\nLocation 2 is %.1f°C warmer than Location 1", -delta)
		default:
			b.WriteString("\nBoth locations have the same temperature")
		}
	}
	return textAndJSON(b.String(), comparison)
}

func renderSnapshot(label string, snap *weather.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", label)
	if snap == nil {
		b.WriteString("  No data\n")
		return b.String()
	}
	if snap.Temperature != nil {
		fmt.Fprintf(&b, "  Temperature: %.1f°C\n", snap.Temperature.Celsius)
	}
	if snap.RelativeHumidity != nil {
		fmt.Fprintf(&b, "  Humidity: %.0f%%\n", *snap.RelativeHumidity)
	}
	if snap.Weather != nil {
		fmt.Fprintf(&b, "  Conditions: %s\n", snap.Weather.Description)
	}
	if snap.Wind != nil {
		fmt.Fprintf(&b, "  Wind: %.1f km/h\n", snap.Wind.SpeedInKph)
	}
	if snap.PrecipitationMm != nil {
		fmt.Fprintf(&b, "  Precipitation: %.1f mm\n", *snap.PrecipitationMm)
	}
	return b.String()
}

func (s *Server) handleGetWeatherSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coords, err := coordsArgs(req)
	if err != nil {
		return s.toolError("get_weather_summary", err), nil
	}

	summary, err := s.services.Weather.GetSummary(ctx, coords)
	if err != nil {
		return s.toolError("get_weather_summary", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather Summary for (%.4f, %.4f)\n", coords.Latitude, coords.Longitude)
	b.WriteString(strings.Repeat("=", 40))

	if summary.Current != nil {
		b.WriteString("\n\nCURRENT CONDITIONS:\n")
		if summary.Current.Temperature != nil {
			fmt.Fprintf(&b, "  Temperature: %.1f°C\n", summary.Current.Temperature.Celsius)
		}
		if summary.Current.Weather != nil {
			fmt.Fprintf(&b, "  Conditions: %s\n", summary.Current.Weather.Description)
		}
		if summary.Current.RelativeHumidity != nil {
			fmt.Fprintf(&b, "  Humidity: %.0f%%\n", *summary.Current.RelativeHumidity)
		}
		if summary.Current.Wind != nil {
			fmt.Fprintf(&b, "  Wind: %.1f km/h\n", summary.Current.Wind.SpeedInKph)
		}
		if summary.Current.UVIndex != nil {
			fmt.Fprintf(&b, "  UV Index: %.1f\n", *summary.Current.UVIndex)
		}
	}

	if summary.AirQuality != nil && summary.AirQuality.AQI != nil {
		b.WriteString("\nAIR QUALITY:\n")
		fmt.Fprintf(&b, "  AQI: %.0f (%s)\n", *summary.AirQuality.AQI, summary.AirQuality.Level)
		if summary.AirQuality.PM25 != nil {
			fmt.Fprintf(&b, "  PM2.5: %.1f μg/m³\n", *summary.AirQuality.PM25)
		}
	}

	if len(summary.Outlook) > 0 {
		fmt.Fprintf(&b, "\n%d-DAY FORECAST:\n", len(summary.Outlook))
		for _, d := range summary.Outlook {
			fmt.Fprintf(&b, "  %s: %s, High: %.1f°C, Low: %.1f°C\n",
				d.Date, d.Weather.Description, d.High.Celsius, d.Low.Celsius)
		}
	}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), summary)
}

func (s *Server) handleGetWeatherForPlace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := stringArg(req, "query")
	if err != nil {
		return s.toolError("get_weather_for_place", err), nil
	}

	place, err := s.services.Location.ResolvePlace(ctx, query)
	if err != nil {
		if errors.Is(err, location.ErrNoResults) {
			return textAndJSON(fmt.Sprintf("No results found for %q. Try a more specific query.", query), nil)
		}
		return s.toolError("get_weather_for_place", err), nil
	}

	forecast, err := s.services.Weather.GetGlobalForecast(ctx, place.Coordinates, 0)
	if err != nil {
		return s.toolError("get_weather_for_place", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Forecast for %s (%.4f, %.4f):\n",
		place.DisplayName, place.Coordinates.Latitude, place.Coordinates.Longitude)
	for _, d := range forecast.Days {
		fmt.Fprintf(&b, "%s: %s, High: %.1f°C, Low: %.1f°C\n",
			d.Date, d.Weather.Description, d.High.Celsius, d.Low.Celsius)
	}

	payload := struct {
		Place    *location.Place         `json:"place"`
		Forecast *weather.GlobalForecast `json:"forecast"`
	}{place, forecast}
	return textAndJSON(strings.TrimRight(b.String(), "\n"), payload)
}
