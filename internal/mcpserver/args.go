package mcpserver

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// Argument extraction for tool requests. JSON numbers arrive as float64;
// anything else is a caller mistake reported as a validation error.

func stringArg(req mcp.CallToolRequest, key string) (string, error) {
	v, ok := req.Params.Arguments[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

func optionalStringArg(req mcp.CallToolRequest, key string) string {
	if v, ok := req.Params.Arguments[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func floatArg(req mcp.CallToolRequest, key string) (float64, error) {
	v, ok := req.Params.Arguments[key]
	if !ok {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return f, nil
}

func optionalIntArg(req mcp.CallToolRequest, key string) (int, error) {
	v, ok := req.Params.Arguments[key]
	if !ok {
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return int(f), nil
}

// coordsArgs reads the standard latitude/longitude pair
func coordsArgs(req mcp.CallToolRequest) (types.Coords, error) {
	lat, err := floatArg(req, "latitude")
	if err != nil {
		return types.Coords{}, err
	}
	lon, err := floatArg(req, "longitude")
	if err != nil {
		return types.Coords{}, err
	}
	return types.Coords{Latitude: lat, Longitude: lon}, nil
}
