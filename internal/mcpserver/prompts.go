package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Prompts are pure templates; no prompt handler makes a network call.

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("travel_weather",
		mcp.WithPromptDescription("Generate a travel weather briefing prompt."),
		mcp.WithArgument("origin",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Starting location (city name or coordinates)"),
		),
		mcp.WithArgument("destination",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Destination location (city name or coordinates)"),
		),
	), s.handleTravelWeatherPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("severe_weather_summary",
		mcp.WithPromptDescription("Generate a severe weather analysis prompt for a US state."),
		mcp.WithArgument("state",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Two-letter US state code (e.g. CA, NY)"),
		),
	), s.handleSevereWeatherPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("clothing_recommendation",
		mcp.WithPromptDescription("Generate clothing recommendations based on weather."),
		mcp.WithArgument("latitude",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Latitude of the location"),
		),
		mcp.WithArgument("longitude",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Longitude of the location"),
		),
	), s.handleClothingPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("outdoor_activity",
		mcp.WithPromptDescription("Determine if weather is suitable for an outdoor activity."),
		mcp.WithArgument("latitude",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Latitude of the location"),
		),
		mcp.WithArgument("longitude",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Longitude of the location"),
		),
		mcp.WithArgument("activity",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The outdoor activity being planned (e.g. hiking, beach, cycling)"),
		),
	), s.handleOutdoorActivityPrompt)
}

func promptArg(req mcp.GetPromptRequest, key string) (string, error) {
	v, ok := req.Params.Arguments[key]
	if !ok || v == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return v, nil
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func (s *Server) handleTravelWeatherPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	origin, err := promptArg(req, "origin")
	if err != nil {
		return nil, err
	}
	destination, err := promptArg(req, "destination")
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(`Please provide a comprehensive travel weather briefing for a trip from %s to %s.

Include the following information:
1. Current weather conditions at both locations
2. Weather forecast for the next 3 days at the destination
3. Any weather alerts or warnings that might affect travel
4. Recommended items to pack based on the weather
5. Best time of day to travel considering weather conditions

Use the available weather tools to gather accurate, real-time data for this analysis.
`, origin, destination)

	return userPrompt("Travel weather briefing", text), nil
}

func (s *Server) handleSevereWeatherPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	state, err := promptArg(req, "state")
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(`Please provide a comprehensive severe weather analysis for %s.

Include the following:
1. Current active weather alerts and warnings
2. Detailed breakdown of each alert type and affected areas
3. Expected duration of severe weather conditions
4. Safety recommendations for residents
5. Any hurricane or tropical storm activity if applicable

Use the available NWS tools to get accurate, official weather alert data.
`, strings.ToUpper(state))

	return userPrompt("Severe weather analysis", text), nil
}

func (s *Server) handleClothingPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	latitude, err := promptArg(req, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := promptArg(req, "longitude")
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(`Based on the current weather conditions and forecast for location (%s, %s), please provide clothing recommendations.

Consider the following factors:
1. Current temperature and "feels like" temperature
2. Expected precipitation (rain, snow, etc.)
3. Wind conditions
4. UV index and sun exposure
5. Humidity levels

Please provide:
- Recommended clothing layers
- Footwear suggestions
- Accessories needed (umbrella, sunglasses, hat, etc.)
- Any special considerations for outdoor activities

Use the weather tools to get current conditions and forecast data.
`, latitude, longitude)

	return userPrompt("Clothing recommendations", text), nil
}

func (s *Server) handleOutdoorActivityPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	latitude, err := promptArg(req, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := promptArg(req, "longitude")
	if err != nil {
		return nil, err
	}
	activity, err := promptArg(req, "activity")
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(`Please analyze whether the weather is suitable for %s at location (%s, %s).

Evaluate the following:
1. Current weather conditions
2. Forecast for the next several hours
3. Temperature and comfort level
4. Precipitation probability
5. Wind conditions
6. UV index and sun exposure
7. Air quality

Provide:
- Overall recommendation (Good/Fair/Poor conditions for %s)
- Best time window for the activity today
- Any weather-related risks or precautions
- Alternative suggestions if conditions are unfavorable

Use the available weather and air quality tools for accurate data.
`, activity, latitude, longitude, activity)

	return userPrompt("Outdoor activity suitability", text), nil
}
