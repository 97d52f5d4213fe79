package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const weatherGlossary = `# Weather Terminology Glossary

## Temperature Terms
- **Heat Index**: The apparent temperature when humidity is factored in with air temperature.
- **Wind Chill**: The apparent temperature when wind is factored in with air temperature.
- **Dew Point**: The temperature at which air becomes saturated and dew forms.

## Precipitation Types
- **Drizzle**: Light rain with drops less than 0.5mm in diameter.
- **Freezing Rain**: Rain that freezes on contact with surfaces.
- **Sleet**: Ice pellets formed when rain freezes before reaching the ground.
- **Hail**: Balls of ice formed in thunderstorms.

## Cloud Types
- **Cumulus**: Puffy, white clouds with flat bases.
- **Stratus**: Flat, gray clouds that often cover the sky.
- **Cirrus**: Thin, wispy clouds at high altitudes.
- **Cumulonimbus**: Large thunderstorm clouds.

## Pressure Systems
- **High Pressure**: Associated with fair weather and clockwise winds (Northern Hemisphere).
- **Low Pressure**: Associated with clouds, precipitation, and counterclockwise winds.
- **Cold Front**: Leading edge of a cooler air mass.
- **Warm Front**: Leading edge of a warmer air mass.

## Severe Weather
- **Tornado Watch**: Conditions are favorable for tornadoes.
- **Tornado Warning**: A tornado has been sighted or indicated by radar.
- **Hurricane Watch**: Hurricane conditions possible within 48 hours.
- **Hurricane Warning**: Hurricane conditions expected within 36 hours.

## Air Quality
- **AQI**: Air Quality Index, a scale from 0-500 measuring air pollution.
- **PM2.5**: Fine particulate matter less than 2.5 micrometers.
- **PM10**: Particulate matter less than 10 micrometers.
- **Ozone**: A gas that can cause respiratory issues at ground level.

## UV Index Scale
- **0-2**: Low - Minimal protection needed
- **3-5**: Moderate - Protection recommended
- **6-7**: High - Protection essential
- **8-10**: Very High - Extra protection needed
- **11+**: Extreme - Avoid sun exposure
`

const stationsURIPrefix = "weather://stations/"

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(
		"weather://glossary",
		"Weather Glossary",
		mcp.WithResourceDescription("Weather terminology definitions and glossary."),
		mcp.WithMIMEType("text/markdown"),
	), s.handleGlossaryResource)

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate(
		stationsURIPrefix+"{state}",
		"State Weather Stations",
		mcp.WithTemplateDescription("List weather observation stations in a US state."),
		mcp.WithTemplateMIMEType("text/plain"),
	), s.handleStationsResource)

	s.mcp.AddResource(mcp.NewResource(
		"weather://alerts/national",
		"National Alert Summary",
		mcp.WithResourceDescription("Summary of all active weather alerts in the US."),
		mcp.WithMIMEType("text/plain"),
	), s.handleNationalAlertsResource)
}

func (s *Server) handleGlossaryResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     weatherGlossary,
		},
	}, nil
}

func (s *Server) handleStationsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	state := strings.TrimPrefix(req.Params.URI, stationsURIPrefix)
	if state == "" || state == req.Params.URI {
		return nil, fmt.Errorf("resource URI must be of the form %s{state}", stationsURIPrefix)
	}

	stations, err := s.services.Weather.GetStations(ctx, state)
	if err != nil {
		return nil, err
	}

	var text string
	if len(stations) == 0 {
		text = fmt.Sprintf("No stations found for state: %s", state)
	} else {
		lines := make([]string, 0, len(stations))
		for _, st := range stations {
			lines = append(lines, fmt.Sprintf("- %s: %s (%.4f, %.4f)",
				st.ID, st.Name, st.Coordinates.Latitude, st.Coordinates.Longitude))
		}
		text = fmt.Sprintf("Weather Stations in %s:\n\n%s", strings.ToUpper(state), strings.Join(lines, "\n"))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

func (s *Server) handleNationalAlertsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary, err := s.services.Alerts.GetNationalSummary(ctx)
	if err != nil {
		return nil, err
	}

	var text string
	if summary.Total == 0 {
		text = "No active weather alerts nationwide."
	} else {
		lines := []string{
			"National Weather Alert Summary",
			fmt.Sprintf("Total Active Alerts: %d", summary.Total),
			"",
			"Alerts by Type:",
		}

		type eventCount struct {
			event string
			count int
		}
		counts := make([]eventCount, 0, len(summary.ByEvent))
		for event, count := range summary.ByEvent {
			counts = append(counts, eventCount{event, count})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].count != counts[j].count {
				return counts[i].count > counts[j].count
			}
			return counts[i].event < counts[j].event
		})
		for _, c := range counts {
			lines = append(lines, fmt.Sprintf("  - %s: %d", c.event, c.count))
		}
		text = strings.Join(lines, "\n")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
